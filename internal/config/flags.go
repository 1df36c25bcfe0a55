package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (program name excluded).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s")
//	-driver database driver (sqlite3 or pgx)
//	-d database DSN
//	-c/-config json file path with configs
//	-updates-file JSON file with remote updates
//	-updates-url base URL of the remote update source
//	-adapter-timeout outbound request timeout (e.g., "10s")
//	-max-depth depth cap of the remote forest
//	-cache-guid client cache GUID
//	-reupload-legacy re-commit remote bookmarks in legacy format
//	-favicon-workers number of favicon download workers
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("bookmark-merger", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout, adapterTimeout time.Duration
	var driver, databaseDSN, jsonConfigPath string
	var updatesFile, updatesURL string
	var maxDepth, faviconWorkers int
	var cacheGUID, logLevel string
	var reuploadLegacy bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3 or pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&updatesFile, "updates-file", "", "JSON file with remote bookmark updates")
	fs.StringVar(&updatesURL, "updates-url", "", "Base URL of the remote update source")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.IntVar(&maxDepth, "max-depth", 0, "Depth cap of the remote bookmark forest")
	fs.StringVar(&cacheGUID, "cache-guid", "", "Client cache GUID")
	fs.BoolVar(&reuploadLegacy, "reupload-legacy", false, "Re-commit remote bookmarks stored in legacy format")
	fs.IntVar(&faviconWorkers, "favicon-workers", 0, "Number of favicon download workers")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Merger: Merger{
			MaxDepth:                maxDepth,
			CacheGUID:               cacheGUID,
			ReuploadLegacyBookmarks: reuploadLegacy,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			UpdatesFile:    updatesFile,
			UpdatesURL:     updatesURL,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			FaviconWorkers: faviconWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
