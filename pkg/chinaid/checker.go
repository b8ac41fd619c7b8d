package chinaid

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/chinaid/pkg/logger"
)

// Identity is the decoded content of a valid number.
type Identity struct {
	Number             string
	AdministrativeCode string
	BirthDate          time.Time
	Gender             Gender
}

// Checker validates numbers and logs rejections.
// It holds no per-call state and is safe for concurrent use.
type Checker struct {
	logger *slog.Logger
	mask   bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMasking controls whether logged numbers have their birth date hidden. Default is true.
func WithMasking(mask bool) Option {
	return func(c *Checker) {
		c.mask = mask
	}
}

// NewChecker returns a Checker that discards logs unless WithLogger is given.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		logger: logger.Discard(),
		mask:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCheckerFromConfig builds the logger described by cfg, writing to w.
func NewCheckerFromConfig(cfg Config, w io.Writer) (*Checker, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("chinaid")),
	)
	return NewChecker(WithLogger(log), WithMasking(cfg.MaskNumbers)), nil
}

// Check validates raw.
func (c *Checker) Check(ctx context.Context, raw string) error {
	id := New(raw)
	if err := id.Validate(); err != nil {
		c.reject(ctx, id, err)
		return err
	}
	return nil
}

// Decode validates raw and returns its fields.
func (c *Checker) Decode(ctx context.Context, raw string) (Identity, error) {
	id := New(raw)
	if err := id.Validate(); err != nil {
		c.reject(ctx, id, err)
		return Identity{}, err
	}

	// A valid number is long enough for every accessor.
	code, _ := id.AdministrativeCode()
	birth, _ := id.BirthDate()

	identity := Identity{
		Number:             id.String(),
		AdministrativeCode: code,
		BirthDate:          birth,
		Gender:             id.Gender(),
	}
	c.logger.DebugContext(ctx, "identity number decoded",
		logger.Number(c.display(id)),
		slog.String("administrative_code", code),
		slog.String("gender", identity.Gender.String()),
	)
	return identity, nil
}

func (c *Checker) reject(ctx context.Context, id ID, err error) {
	attrs := []any{logger.Number(c.display(id)), logger.Kind(Kind(err))}
	// Error texts may quote the birth date.
	if !c.mask {
		attrs = append(attrs, logger.Error(err))
	}
	c.logger.DebugContext(ctx, "identity number rejected", attrs...)
}

func (c *Checker) display(id ID) string {
	if c.mask {
		return id.Masked()
	}
	return id.String()
}
