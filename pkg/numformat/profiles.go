package numformat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Profiles is a read-only registry of named formats.
type Profiles struct {
	formats map[string]Format
}

type profilesConfig struct {
	logger *slog.Logger
}

// ProfileOption configures LoadProfiles.
type ProfileOption func(*profilesConfig)

// WithLogger sets the logger used while loading profiles.
func WithLogger(logger *slog.Logger) ProfileOption {
	return func(c *profilesConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// LoadProfiles decodes a YAML document mapping profile names to format configs:
//
//	amount:
//	  precision: 17
//	  scale: 2
//	quantity:
//	  precision: 10
//	  only_positive: true
//
// Omitted keys take their zero value, so scale defaults to 0 and digits to ascii.
// Unknown keys and a second document in the stream fail the load with
// ErrParsingProfiles. The first invalid entry (in name order) fails the whole load.
func LoadProfiles(ctx context.Context, r io.Reader, opts ...ProfileOption) (*Profiles, error) {
	cfg := &profilesConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrProfilesLoadCancelled, err)
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw map[string]Config
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoProfiles
		}
		return nil, errors.Join(ErrParsingProfiles, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParsingProfiles, ErrMultipleProfileDocuments, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoProfiles
	}

	names := lo.Keys(raw)
	slices.Sort(names)

	formats := make(map[string]Format, len(raw))
	for _, name := range names {
		f, err := raw[name].Format()
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w %q", ErrInvalidProfile, name), err)
		}
		formats[name] = f
		cfg.logger.DebugContext(ctx, "number format profile loaded",
			slog.String("profile", name),
			slog.String("format", f.String()),
			slog.String("digits", string(f.Digits())),
		)
	}

	return &Profiles{formats: formats}, nil
}

// Get returns the format registered under name.
func (p *Profiles) Get(name string) (Format, bool) {
	f, ok := p.formats[name]
	return f, ok
}

// Names returns the registered profile names in sorted order.
func (p *Profiles) Names() []string {
	names := lo.Keys(p.formats)
	slices.Sort(names)
	return names
}

// Validator returns a Validator for the named profile.
func (p *Profiles) Validator(name string) (*Validator, error) {
	f, ok := p.formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return NewValidator(f), nil
}
