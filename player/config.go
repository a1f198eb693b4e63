package player

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

const Version = "1.0.0"

var ErrArguments = errors.New(`arguments: "<ip> <port number> <player name>"`)

type Config struct {
	Local         Endpoint
	Name          string
	APIListenAddr string
	LogLevel      logrus.Level
	ShowVersion   bool
}

// ParseConfig reads optional flags followed by the three required
// positional arguments. Every error here is fatal at startup.
func ParseConfig(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("player", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: player [flags] <ip> <port number> <player name>")
		fs.PrintDefaults()
	}
	var (
		apiAddr  = fs.String("api", "", "Status API listen address, disabled when empty")
		logLevel = fs.String("log-level", "info", "Log level (debug, info, warn, error)")
		version  = fs.Bool("version", false, "Print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *version {
		return Config{ShowVersion: true}, nil
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %s", *logLevel)
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return Config{}, ErrArguments
	}
	if !IsIP(rest[0]) {
		return Config{}, errors.New("invalid IP address")
	}
	if !IsPort(rest[1]) {
		return Config{}, errors.New("invalid port number")
	}
	port, _ := strconv.Atoi(rest[1])
	return Config{
		Local:         Endpoint{IP: rest[0], Port: port},
		Name:          rest[2],
		APIListenAddr: *apiAddr,
		LogLevel:      level,
	}, nil
}
