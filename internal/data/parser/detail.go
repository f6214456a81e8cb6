package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-shealth-tcx/internal/core/constants"
	"github.com/penwyp/go-shealth-tcx/internal/core/model"
	"github.com/penwyp/go-shealth-tcx/internal/util"
)

// Parser reads live data detail records. Parsed files are cached so a record
// referenced by several summary rows is decoded once.
type Parser struct {
	mu    sync.Mutex
	cache map[string][]model.DetailSample
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{
		cache: make(map[string][]model.DetailSample),
	}
}

// ParseFile decodes the detail record at path into its samples in source order.
func (p *Parser) ParseFile(path string) ([]model.DetailSample, error) {
	p.mu.Lock()
	if cached, ok := p.cache[path]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Start parsing detail record: %s", path))

	data, err := os.ReadFile(path)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to read detail record: %s - %v", path, err))
		return nil, err
	}

	samples, err := ParseDetail(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse detail record %s: %w", path, err)
	}

	p.mu.Lock()
	p.cache[path] = samples
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Parsed %d samples from %s", len(samples), filepath.Base(path)))
	return samples, nil
}

// ParseDetail decodes a JSON array of sample objects. Unknown keys are ignored.
func ParseDetail(data []byte) ([]model.DetailSample, error) {
	var samples []model.DetailSample
	if err := sonic.Unmarshal(data, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// ResolveDetailPath maps a live data filename to its location inside the
// export: <root>/jsons/com.samsung.shealth.exercise/<first char>/<filename>.
// The shard is the first character, not the first byte.
func ResolveDetailPath(root, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: empty detail filename", ErrMalformedField)
	}
	_, size := utf8.DecodeRuneInString(filename)
	return filepath.Join(root, filepath.FromSlash(constants.DetailDir), filename[:size], filename), nil
}
