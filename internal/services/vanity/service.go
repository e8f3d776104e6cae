package vanity

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"rnsid/internal/crypto"
	"rnsid/internal/domain"
)

// maxPatternNibbles bounds prefix plus postfix to the address width.
const maxPatternNibbles = 32

// Options configures a search.
type Options struct {
	Prefix  string // desired hex prefix, "" for none
	Postfix string // desired hex postfix, "" for none
	Workers int    // defaults to runtime.NumCPU()
	DryRun  bool   // measure speed only, never return an identity
}

// Stats summarizes a finished search.
type Stats struct {
	Attempts uint64
	Elapsed  time.Duration
}

// Service runs vanity searches.
type Service struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Service { return &Service{log: log} }

// Search generates identities until one matches the patterns or ctx is
// cancelled. In dry-run mode it runs until cancellation and returns no
// identity.
func (s *Service) Search(ctx context.Context, opts Options) (*domain.Identity, Stats, error) {
	prefix, postfix, err := parsePatterns(opts.Prefix, opts.Postfix)
	if err != nil {
		return nil, Stats{}, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	s.log.Info().
		Str("prefix", opts.Prefix).
		Str("postfix", opts.Postfix).
		Int("workers", workers).
		Bool("dry_run", opts.DryRun).
		Msg("searching for vanity address")

	var attempts atomic.Uint64
	result := make(chan domain.Identity, 1)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, searchCtx := errgroup.WithContext(searchCtx)
	start := time.Now()

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-searchCtx.Done():
					return nil
				default:
				}

				id, err := crypto.GenerateIdentity()
				if err != nil {
					return err
				}
				attempts.Add(1)

				if opts.DryRun {
					continue
				}
				if matchesPattern(id.Address, prefix, postfix) {
					select {
					case result <- id:
						cancel()
					default:
					}
					return nil
				}
			}
		})
	}

	progressDone := make(chan struct{})
	go s.reportProgress(searchCtx, &attempts, start, progressDone)

	err = g.Wait()
	cancel()
	<-progressDone

	stats := Stats{Attempts: attempts.Load(), Elapsed: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}

	select {
	case id := <-result:
		s.log.Info().
			Str("address", id.Address.Hex()).
			Uint64("attempts", stats.Attempts).
			Dur("elapsed", stats.Elapsed).
			Msg("found matching identity")
		return &id, stats, nil
	default:
		// Dry run or cancelled before a hit.
		return nil, stats, ctx.Err()
	}
}

// reportProgress logs the attempt rate once per second until done.
func (s *Service) reportProgress(ctx context.Context, attempts *atomic.Uint64, start time.Time, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var last uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := attempts.Load()
			rate := current - last
			last = current
			avg := float64(current) / time.Since(start).Seconds()
			s.log.Info().
				Uint64("per_sec", rate).
				Uint64("avg_per_sec", uint64(avg)).
				Uint64("total", current).
				Msg("progress")
		}
	}
}

// parsePatterns validates and decodes the hex patterns into nibbles.
func parsePatterns(prefix, postfix string) (pre, post []byte, err error) {
	pre, err = hexToNibbles(strings.ToLower(prefix))
	if err != nil {
		return nil, nil, fmt.Errorf("prefix: %w", err)
	}
	post, err = hexToNibbles(strings.ToLower(postfix))
	if err != nil {
		return nil, nil, fmt.Errorf("postfix: %w", err)
	}
	if len(pre)+len(post) > maxPatternNibbles {
		return nil, nil, fmt.Errorf("prefix and postfix together exceed %d hex chars", maxPatternNibbles)
	}
	return pre, post, nil
}

func hexToNibbles(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) > maxPatternNibbles {
		return nil, fmt.Errorf("pattern longer than %d hex chars", maxPatternNibbles)
	}
	out := make([]byte, len(s))
	for i, c := range []byte(s) {
		switch {
		case c >= '0' && c <= '9':
			out[i] = c - '0'
		case c >= 'a' && c <= 'f':
			out[i] = c - 'a' + 10
		default:
			return nil, fmt.Errorf("invalid hex character %q", c)
		}
	}
	return out, nil
}

// matchesPattern checks the address nibble-wise against prefix and postfix.
func matchesPattern(addr domain.Address, prefix, postfix []byte) bool {
	for i, n := range prefix {
		if nibbleAt(addr, i) != n {
			return false
		}
	}
	total := len(addr) * 2
	for i, n := range postfix {
		if nibbleAt(addr, total-len(postfix)+i) != n {
			return false
		}
	}
	return true
}

func nibbleAt(addr domain.Address, i int) byte {
	b := addr[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0f
}
