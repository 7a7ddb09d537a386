package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// readMnemonic reads a mnemonic from the terminal without echoing it
func readMnemonic(prompt string) (string, error) {
	// Get the initial state of the terminal.
	initialTermState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		return "", errors.Wrap(err, "stdin is not a terminal")
	}

	// Restore it in the event of an interrupt.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		if _, ok := <-c; ok {
			_ = term.Restore(int(syscall.Stdin), initialTermState)
			os.Exit(1)
		}
	}()
	defer func() {
		signal.Stop(c)
		close(c)
	}()

	fmt.Print(prompt)
	mnemonic, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return strings.Join(strings.Fields(string(mnemonic)), " "), nil
}
