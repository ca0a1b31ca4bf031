package inspect

import (
	"errors"
	"time"

	"github.com/0xAozora/cs2-inspect-link/types"
	"github.com/rs/zerolog"
)

// Codec converts items to inspect links and back. It holds no mutable state,
// so one Codec can serve concurrent callers as long as the economy does not
// change underneath it.
type Codec struct {
	economy       Economy
	metricsLogger MetricsLogger

	log *zerolog.Logger
}

// NewCodec creates a new Codec instance
func NewCodec(economy Economy, logger *zerolog.Logger, metricsLogger MetricsLogger) (*Codec, error) {

	if economy == nil {
		return nil, errors.New("economy is nil")
	}
	if metricsLogger == nil {
		metricsLogger = &StubMetrics{}
	}
	if logger == nil {
		l := zerolog.New(zerolog.NewConsoleWriter())
		logger = &l
	}

	return &Codec{
		economy:       economy,
		metricsLogger: metricsLogger,
		log:           logger,
	}, nil
}

// CatalogLink returns the inspect link of an uncustomized catalog item.
func (c *Codec) CatalogLink(item *types.CatalogItem) string {
	start := time.Now()
	link := FormatLink(EncodeHex(CatalogBlock(item)))
	c.metricsLogger.LogOperation("encode", time.Since(start), &start, false)
	return link
}

// Link returns the inspect link of an owned item.
func (c *Codec) Link(item *types.Item) (string, error) {
	start := time.Now()

	block, err := c.Block(item)
	if err != nil {
		c.metricsLogger.LogOperation("encode", time.Since(start), &start, true)
		c.log.Debug().
			Err(err).
			Uint32("id", item.ID).
			Msg("Failed to encode item")
		return "", err
	}

	link := FormatLink(EncodeHex(block))
	c.metricsLogger.LogOperation("encode", time.Since(start), &start, false)

	c.log.Debug().
		Uint32("id", item.ID).
		Bool("command", IsCommand(link)).
		Msg("Encoded item")

	return link, nil
}

// Parse decodes an inspect link in either form and resolves it against the
// economy.
func (c *Codec) Parse(link string) (*types.Item, error) {
	start := time.Now()

	form := "url"
	if IsCommand(link) {
		form = "command"
	}

	block, err := DecodeHex(link)
	if err == nil {
		var item *types.Item
		if item, err = c.Resolve(block); err == nil {
			c.metricsLogger.LogOperation("decode", time.Since(start), &start, false)
			return item, nil
		}
	}

	c.metricsLogger.LogOperation("decode", time.Since(start), &start, true)
	c.log.Debug().
		Err(err).
		Str("link_form", form).
		Msg("Failed to decode inspect link")

	return nil, err
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
