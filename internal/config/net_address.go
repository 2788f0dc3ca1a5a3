package config

import (
	"errors"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements pflag.Value and encoding.TextUnmarshaler, so the same
// spelling is accepted from flags, environment, files and settings.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	// port 0 asks the system for a free port
	if port < 0 || port > 65535 {
		return errors.New("port number is an integer between 0 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

func (a *NetAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

func (a NetAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
