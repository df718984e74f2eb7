package nested

import (
	"log/slog"
	"time"
)

// Processor is the navigation engine. It holds a configuration fixed at
// construction and a structured logger, and keeps no reference to the data it
// walks. Once configured (including SetLogger) a single Processor may be
// shared between goroutines. The data itself is not synchronized.
type Processor struct {
	config *Config
	logger *slog.Logger
}

// Options tune a single set or delete call
type Options struct {
	CreatePaths       bool `json:"create_paths"`        // Fabricate missing intermediate containers on set
	AllowListMutation bool `json:"allow_list_mutation"` // Permit deleting sequence elements
}

// New creates a new processor with the given configuration.
// If no configuration is provided, uses default configuration.
func New(config ...*Config) *Processor {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	} else {
		cfg = DefaultConfig()
	}
	_ = cfg.Validate()

	return &Processor{
		config: cfg,
		logger: slog.Default().With("component", "nested-processor"),
	}
}

// GetConfig returns a copy of the processor configuration
func (p *Processor) GetConfig() *Config {
	return p.config.Clone()
}

// SetLogger sets a custom structured logger for the processor.
// It is not synchronized: call it before the processor is shared.
func (p *Processor) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger.With("component", "nested-processor")
	} else {
		p.logger = slog.Default().With("component", "nested-processor")
	}
}

// Normalize converts a string or sequence path into its canonical tokens
func (p *Processor) Normalize(path any) (Path, error) {
	tokens, err := normalizePath(path, p.config.MaxDepth)
	if err != nil {
		return nil, withContext(err, opNormalize, path)
	}
	return tokens, nil
}

// Get returns the value at path or a *PathError
func (p *Processor) Get(data, path any) (any, error) {
	start := time.Now()
	tokens, err := p.Normalize(path)
	if err != nil {
		p.logError(opGet, path, err)
		return nil, err
	}

	value, err := p.resolveForRead(data, tokens)
	if err != nil {
		err = withContext(err, opGet, path)
		p.logError(opGet, path, err)
		return nil, err
	}
	p.logOperation(opGet, path, time.Since(start))
	return value, nil
}

// GetOr returns the value at path, or def when the path does not resolve.
// Malformed or too deep paths still return an error. An index beyond
// MaxListSize cannot address an existing element, so it is a miss like any
// other out of range index.
func (p *Processor) GetOr(data, path, def any) (any, error) {
	tokens, err := p.Normalize(path)
	if err != nil {
		p.logError(opGet, path, err)
		return nil, err
	}

	value, err := p.resolveForRead(data, tokens)
	if err != nil {
		return def, nil
	}
	return value, nil
}

// Exists reports whether path resolves. Malformed or too deep paths return an
// error; an index beyond MaxListSize reports false.
func (p *Processor) Exists(data, path any) (bool, error) {
	tokens, err := p.Normalize(path)
	if err != nil {
		p.logError(opExists, path, err)
		return false, err
	}

	_, err = p.resolveForRead(data, tokens)
	return err == nil, nil
}

// Set writes value at path, mutating data in place
func (p *Processor) Set(data, path, value any, opts ...*Options) error {
	start := time.Now()
	options := prepareOptions(opts...)

	tokens, err := p.Normalize(path)
	if err != nil {
		p.logError(opSet, path, err)
		return err
	}

	if err := p.setAt(data, tokens, value, options.CreatePaths); err != nil {
		err = withContext(err, opSet, path)
		p.logError(opSet, path, err)
		return err
	}
	p.logOperation(opSet, path, time.Since(start))
	return nil
}

// Delete removes the value at path and returns it
func (p *Processor) Delete(data, path any, opts ...*Options) (any, error) {
	start := time.Now()
	options := prepareOptions(opts...)

	tokens, err := p.Normalize(path)
	if err != nil {
		p.logError(opDelete, path, err)
		return nil, err
	}

	removed, err := p.deleteAt(data, tokens, options.AllowListMutation)
	if err != nil {
		err = withContext(err, opDelete, path)
		p.logError(opDelete, path, err)
		return nil, err
	}
	p.logOperation(opDelete, path, time.Since(start))
	return removed, nil
}

// Depth returns the maximum nesting depth of data
func (p *Processor) Depth(data any) int {
	root, _ := rootOf(data)
	return depth(root)
}

// CountLeaves returns the number of leaf values in data
func (p *Processor) CountLeaves(data any) int {
	root, _ := rootOf(data)
	return countLeaves(root)
}

// AllPaths returns the path of every leaf in data
func (p *Processor) AllPaths(data any) []Path {
	root, _ := rootOf(data)
	return allPaths(root)
}

func prepareOptions(opts ...*Options) Options {
	if len(opts) > 0 && opts[0] != nil {
		return *opts[0]
	}
	return Options{}
}
