// Package main demonstrates usage of the scg-fullerror package.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-fullerror/fullerror"
	"github.com/next-trace/scg-fullerror/loghook"
)

type variantA struct{ n uint8 }

func (e variantA) Error() string { return fmt.Sprintf("error variant a: %d", e.n) }

type outerErr struct{ source error }

func (e *outerErr) Error() string { return "ErrA error" }
func (e *outerErr) Unwrap() error { return e.source }

var (
	level  string
	header string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&level, "log", "info", "Log level")
	rootCmd.PersistentFlags().StringVar(&header, "header", "", "Separator printed before each cause (default \""+fullerror.DefaultHeader+"\")")
}

var rootCmd = &cobra.Command{
	Use:           "example",
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "Print an error with its cause chain",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := log.ParseLevel(level)
		if err != nil {
			l = log.InfoLevel
		}

		log.SetLevel(l)
		log.AddHook(loghook.New(loghook.WithLevels(log.ErrorLevel, log.WarnLevel)))

		if header != "" {
			return fullerror.SetHeader(header)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Direct construction
		e := fullerror.New(&outerErr{source: variantA{n: 5}})
		fmt.Print(e)

		// Propagation through a pkg/errors chain
		_, err := fullerror.Try(load())
		fmt.Print(err)

		log.WithError(err).Warn("load failed")

		return nil
	},
}

func load() (int, error) {
	return 0, errors.WithMessage(&outerErr{source: variantA{n: 7}}, "load settings")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
