package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/peterh/liner"

	"github.com/jcorbin/plenty/internal/logio"
)

const banner = `
:::::::::  :::        :::::::::: ::::    ::: ::::::::::: :::   :::
:+:    :+: :+:        :+:        :+:+:   :+:     :+:     :+:   :+:
+:+    +:+ +:+        +:+        :+:+:+  +:+     +:+      +:+ +:+
+#++:++#+  +#+        +#++:++#   +#+ +:+ +#+     +#+       +#++:
+#+        +#+        +#+        +#+  +#+#+#     +#+        +#+
#+#        #+#        #+#        #+#   #+#+#     #+#        #+#
###        ########## ########## ###    ####     ###        ###
`

const prompt = "---> "

var quitWords = []string{"exit", "q", "quit"}

func main() {
	ctx := context.Background()
	log := logio.NewLogger(os.Stderr)

	var (
		timeout  time.Duration
		trace    bool
		maxDepth int
		history  string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for running scripts")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&maxDepth, "max-depth", 10000, "limit nested function calls; 0 for no limit")
	flag.StringVar(&history, "history", "~/.plenty_history", "interactive history file; empty to disable")
	flag.Parse()

	opts := []VMOption{
		WithOutput(os.Stdout),
		WithCallDepth(maxDepth),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	var args = flag.Args()
	for _, name := range args {
		if name == "-" {
			opts = append(opts, WithNamedInput("<stdin>", os.Stdin))
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(log.ExitCode())
		}
		opts = append(opts, WithInput(f))
	}

	vm := New(opts...)
	defer func() {
		if trace {
			vmDumper{vm: vm, out: &logio.Writer{Logf: log.Leveledf("TRACE")}}.dump()
		}
		log.ErrorIf(vm.Close())
		os.Exit(log.ExitCode())
	}()

	if len(args) == 0 {
		log.ErrorIf(repl(vm, log, history))
		return
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := vm.Run(ctx); err != nil {
		log.Errorf("%+v", err)
	}
}

// repl reads lines interactively, ingesting each one. An error abandons the
// rest of its line, but not the session.
func repl(vm *VM, log *logio.Logger, history string) error {
	if err := writeBanner(os.Stdout); err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if history != "" {
		path, err := homedir.Expand(history)
		if err != nil {
			return fmt.Errorf("invalid history path: %w", err)
		}
		history = path
		if f, err := os.Open(history); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isQuit(line) {
			break
		}
		ln.AppendHistory(line)

		if err := vm.IngestLine(line); err != nil {
			log.Printf("Error", "%v", err)
		}
		if err := vm.flush(); err != nil {
			return err
		}
	}

	if history != "" {
		f, err := os.Create(history)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := ln.WriteHistory(f); err != nil {
			return err
		}
	}
	return nil
}

// writeBanner writes the banner, followed by one blank line.
func writeBanner(w io.Writer) error {
	_, err := io.WriteString(w, banner+"\n")
	return err
}

func isQuit(line string) bool {
	for _, word := range quitWords {
		if line == word {
			return true
		}
	}
	return false
}
