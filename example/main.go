// cs2inspect encodes items to CS2 inspect links and decodes links back to
// items against a local catalog file.
//
//	cs2inspect [flags] encode [item-file]
//	cs2inspect [flags] catalog <id>...
//	cs2inspect [flags] decode <link>
//	cs2inspect [flags] block <link>
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	inspect "github.com/0xAozora/cs2-inspect-link"
	"github.com/0xAozora/cs2-inspect-link/economy"
	"github.com/0xAozora/cs2-inspect-link/example/metrics"
	"github.com/0xAozora/cs2-inspect-link/types"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, lookup func(string) (string, bool)) error {

	flagSet := pflag.NewFlagSet("cs2inspect", pflag.ContinueOnError)
	configPath := flagSet.StringP("config", "c", "", "path to a TOML config file")
	envFile := flagSet.String("env-file", ".env", "dotenv file loaded into the environment if present")
	catalogPath := flagSet.String("catalog", "", "catalog file (.json, .jsonc, .yaml, .yml, .toml)")
	format := flagSet.StringP("output", "o", "", "output format: json, yaml, msgpack or cbor")
	level := flagSet.String("log-level", "", "log level")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", *envFile, err)
	}

	cfg, err := loadConfig(*configPath, lookup)
	if err != nil {
		return err
	}
	if flagSet.Changed("catalog") {
		cfg.Catalog = *catalogPath
	}
	if flagSet.Changed("output") {
		cfg.Format = *format
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = *level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Logger
	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).Level(lvl).With().Timestamp().Logger()

	// Metrics Logger to log codec operations
	var metricsLogger inspect.MetricsLogger
	if cfg.InfluxDB.Host != "" {
		db := metrics.NewInfluxDB(cfg.InfluxDB.Host, cfg.InfluxDB.Key, cfg.InfluxDB.Org, cfg.InfluxDB.Bucket)
		defer db.Close()
		metricsLogger = db
	}

	catalog, err := economy.Load(cfg.Catalog)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("items", catalog.Len()).
		Str("path", cfg.Catalog).
		Msg("Catalog loaded")

	codec, err := inspect.NewCodec(catalog, &logger, metricsLogger)
	if err != nil {
		return err
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		return errors.New("missing command: encode, catalog, decode or block")
	}

	switch cmd, rest := rest[0], rest[1:]; cmd {
	case "encode":
		return encode(codec, rest, stdin, stdout)
	case "catalog":
		return catalogLinks(codec, catalog, rest, stdout)
	case "decode":
		item, err := codec.Parse(strings.Join(rest, " "))
		if err != nil {
			return err
		}
		return write(stdout, cfg.Format, item)
	case "block":
		block, err := inspect.DecodeHex(strings.Join(rest, " "))
		if err != nil {
			return err
		}
		return write(stdout, cfg.Format, block)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// encode reads one item as JSON or YAML from the named file or stdin.
func encode(codec *inspect.Codec, args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	switch {
	case len(args) == 0 || args[0] == "-":
		data, err = io.ReadAll(stdin)
	case len(args) == 1:
		data, err = os.ReadFile(args[0])
	default:
		return errors.New("encode takes at most one item file")
	}
	if err != nil {
		return err
	}

	var item types.Item
	if err := parseItem(data, &item); err != nil {
		return fmt.Errorf("parsing item: %w", err)
	}

	link, err := codec.Link(&item)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, link)
	return err
}

func catalogLinks(codec *inspect.Codec, catalog *economy.Catalog, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("catalog needs at least one item id")
	}
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid item id %q", arg)
		}
		item, ok := catalog.Get(uint32(id))
		if !ok {
			return fmt.Errorf("%w: id %d", inspect.ErrUnknownItem, id)
		}
		if _, err := fmt.Fprintln(stdout, codec.CatalogLink(item)); err != nil {
			return err
		}
	}
	return nil
}
