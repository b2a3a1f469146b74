package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ciphers/cmd/app/commands"
	"github.com/allisson/ciphers/internal/app"
	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/config"
)

func cipherFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "cipher",
		Aliases:  []string{"c"},
		Required: true,
		Usage:    "Cipher name (see list-ciphers)",
	}
}

func keyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "Cipher key; omit to use the cipher's default key",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// newCLIContainer builds a container for one-shot commands. Logs go to stderr so
// stdout carries only command output, and metrics are off for short-lived processes.
func newCLIContainer() *app.Container {
	cfg := config.Load()
	cfg.MetricsEnabled = false
	return app.NewContainer(cfg, app.WithLogOutput(os.Stderr))
}

func transformCommand(op domain.Operation, usage string) *cli.Command {
	return &cli.Command{
		Name:  string(op),
		Usage: usage,
		Flags: []cli.Flag{
			cipherFlag(),
			keyFlag(),
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "Text to transform; read from stdin when omitted",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			container := newCLIContainer()
			defer func() { _ = container.Shutdown(ctx) }()

			cipherUseCase, err := container.CipherUseCase()
			if err != nil {
				return err
			}

			return commands.RunTransform(
				ctx,
				cipherUseCase,
				container.Logger(),
				commands.DefaultIO(),
				op,
				commands.TransformOptions{
					Cipher:  cmd.String("cipher"),
					Key:     cmd.String("key"),
					Text:    cmd.String("text"),
					TextSet: cmd.IsSet("text"),
					Format:  cmd.String("format"),
				},
			)
		},
	}
}

func getCipherCommands() []*cli.Command {
	return []*cli.Command{
		transformCommand(domain.OperationEncrypt, "Encrypt text with a classical cipher"),
		transformCommand(domain.OperationDecrypt, "Decrypt text with a classical cipher"),
		{
			Name:  "validate-key",
			Usage: "Check a key for a cipher and print its canonical form",
			Flags: []cli.Flag{
				cipherFlag(),
				keyFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidateKey(
					ctx,
					cipherUseCase,
					commands.DefaultIO(),
					cmd.String("cipher"),
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-ciphers",
			Usage: "List supported ciphers with their key formats",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				return commands.RunListCiphers(ctx, cipherUseCase, commands.DefaultIO(), cmd.String("format"))
			},
		},
	}
}
