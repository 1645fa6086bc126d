package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"holidayapi/services"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print the bcrypt hash of a password read from the terminal or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.ErrOrStderr(), os.Stdin)
		if err != nil {
			return err
		}
		hash, err := services.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

// readPassword hỏi mật khẩu hai lần nếu stdin là terminal, ngược lại đọc một dòng
func readPassword(prompt io.Writer, in *os.File) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.Wrap(err, "read password")
		}
		return checkPassword(strings.TrimRight(line, "\r\n"))
	}

	fmt.Fprint(prompt, "Enter password:   ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}
	fmt.Fprint(prompt, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", errors.Wrap(err, "read password confirmation")
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return checkPassword(string(first))
}

func checkPassword(p string) (string, error) {
	if p == "" {
		return "", errors.New("password cannot be empty")
	}
	if len(p) > 72 {
		return "", errors.New("password must be at most 72 bytes")
	}
	return p, nil
}
