package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/loop/client"
	"github.com/tomz197/vectoroids/internal/loop/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Anything on stderr would corrupt the raw terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("ASTEROIDS_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           config.GetEnvLogLevel("LOG_LEVEL", log.InfoLevel),
	})

	seed := config.GetEnvInt("ASTEROIDS_SEED", time.Now().UnixNano())
	logger.Debug("starting", "seed", seed)

	var sound game.Audio
	if config.GetEnvBool("ASTEROIDS_SOUND", true) {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
		defer player.Close()
		sound = player
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(server.NewServer(logger), bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: os.Getenv("USER"),
		Audio:    sound,
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(seed)),
		Detail:   config.GetEnvBool("ASTEROIDS_DETAIL", true),
	})
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
