package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/desertwitch/posixfs/internal/posix"
	"github.com/spf13/cobra"
)

func getCmdCrypt(app *App) *cobra.Command {
	var (
		password  string
		salt      string
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "crypt",
		Short: "Hash a password like crypt(3)",
		Long: `Hash a password like crypt(3).

  The password is read from the first line of standard input unless
  --password is given. With --salt the hash method follows its "$id$" prefix,
  which also allows verifying a password against an existing hash.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("password") {
				line, err := readLine(app.stdin)
				if err != nil {
					return err
				}
				password = line
			}

			var (
				hash string
				err  error
			)

			if salt != "" {
				hash, err = app.fsHandler.Crypt(password, salt)
			} else {
				algo := app.cfg.CryptAlgorithm
				if algorithm != "" {
					if algo, err = posix.ParseCryptAlgorithm(algorithm); err != nil {
						return err
					}
				}
				hash, err = app.fsHandler.CryptWith(password, algo)
			}
			if err != nil {
				return err
			}

			return app.printLine("hash", hash)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password to hash")
	cmd.Flags().StringVarP(&salt, "salt", "s", "", "salt or existing hash")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "method for a new salt: md5, sha256, sha512 or des")

	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("(posixctl-crypt) failed to read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
