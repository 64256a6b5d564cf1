package match

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"samm-mapper/internal/common"
	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/model"
)

const (
	// DefaultThreshold is the minimum confidence of an accepted match.
	DefaultThreshold = 0.6
	// DefaultCacheSize bounds the name-key memo.
	DefaultCacheSize = 4096
)

// Config controls a matching run.
type Config struct {
	// Threshold is the minimum confidence of an accepted match.
	Threshold float64
	// Overrides maps a source reference to a target reference. Either side
	// may be a property URI or a document path.
	Overrides map[string]string
	// ReportAmbiguity emits an ambiguous_match warning when the winning
	// level offered several unclaimed targets.
	ReportAmbiguity bool
	// CacheSize bounds the name-key memo; <= 0 means DefaultCacheSize.
	CacheSize int
	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		CacheSize: DefaultCacheSize,
	}
}

// Match pairs a source and a target property.
type Match struct {
	Source   model.Entry
	Target   model.Entry
	Evidence Evidence
}

// Method returns the cascade level that produced the match.
func (m Match) Method() Method {
	return m.Evidence.Method()
}

// Confidence returns the match confidence.
func (m Match) Confidence() float64 {
	return m.Evidence.Confidence()
}

// Label renders the pair as "source.path -> target.path".
func (m Match) Label() string {
	return m.Source.Property.Path + " -> " + m.Target.Property.Path
}

// Result is the outcome of one matching run.
type Result struct {
	// Matches are in source declaration order.
	Matches        []Match
	UnmappedSource []model.Entry
	UnmappedTarget []model.Entry
	Diagnostics    diagnostic.Diagnostics
}

// Engine runs the matching cascade. An Engine may be reused; every Match
// call starts with no claimed targets.
type Engine struct {
	cfg   Config
	log   *log.Logger
	names *lru.Cache[string, []string]
}

// NewEngine creates an engine.
func NewEngine(cfg Config) *Engine {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Only fails for a non-positive size.
	names, _ := lru.New[string, []string](cfg.CacheSize)

	return &Engine{cfg: cfg, log: logger, names: names}
}

// nameKeys memoizes NameKeys.
func (e *Engine) nameKeys(s string) []string {
	if s == "" {
		return nil
	}

	if keys, ok := e.names.Get(s); ok {
		return keys
	}

	keys := NameKeys(s)
	e.names.Add(s, keys)

	return keys
}

// run is the state of one Match call.
type run struct {
	e      *Engine
	src    *model.Index
	tgt    *model.Index
	claims *claimSet

	byChar  map[string][]int
	byName  map[string][]int
	byLocal map[string][]int
}

// Match computes the bijective correspondence between src and tgt.
func (e *Engine) Match(src, tgt *model.Index) *Result {
	r := &run{
		e:       e,
		src:     src,
		tgt:     tgt,
		claims:  newClaimSet(tgt.Len()),
		byChar:  make(map[string][]int),
		byName:  make(map[string][]int),
		byLocal: make(map[string][]int),
	}

	r.buildIndices()

	res := &Result{}
	overridden := r.applyOverrides(&res.Diagnostics)

	for _, s := range src.Entries {
		if m, ok := overridden[s.Position]; ok {
			res.Matches = append(res.Matches, m)

			continue
		}

		cands := r.candidates(s).AboveThreshold(e.cfg.Threshold).Rank()

		best := cands.Best()
		if best == nil || !r.claims.Claim(best.Target.Position) {
			e.log.Debug("unmapped", "source", s.Property.Path)
			res.UnmappedSource = append(res.UnmappedSource, s)

			continue
		}

		m := Match{Source: s, Target: best.Target, Evidence: best.Evidence}

		if tied := cands.Tied(); e.cfg.ReportAmbiguity && len(tied) > 1 {
			res.Diagnostics.AddWarning(diagnostic.KindAmbiguousMatch, s.Property.Path,
				fmt.Sprintf("%d targets tie at %s, picked %s by declaration order",
					len(tied), best.Evidence.Method(), best.Target.Property.Path),
				tied.Paths()...)
		}

		e.log.Debug("matched", "source", s.Property.Path, "target", m.Target.Property.Path,
			"method", m.Method(), "confidence", m.Confidence())
		res.Matches = append(res.Matches, m)
	}

	for _, t := range tgt.Entries {
		if !r.claims.Claimed(t.Position) {
			res.UnmappedTarget = append(res.UnmappedTarget, t)
		}
	}

	return res
}

func (r *run) buildIndices() {
	for _, t := range r.tgt.Entries {
		p := t.Property

		if p.Characteristic != "" {
			r.byChar[p.Characteristic] = append(r.byChar[p.Characteristic], t.Position)
		}

		for _, key := range r.e.nameKeys(p.PreferredName) {
			r.byName[key] = append(r.byName[key], t.Position)
		}

		if p.LocalName != "" {
			local := strings.ToLower(p.LocalName)
			r.byLocal[local] = append(r.byLocal[local], t.Position)
		}
	}
}

// applyOverrides claims override targets before the cascade runs so that no
// cascade match can take them.
func (r *run) applyOverrides(diags *diagnostic.Diagnostics) map[int]Match {
	out := make(map[int]Match)
	if len(r.e.cfg.Overrides) == 0 {
		return out
	}

	used := make(map[string]bool)

	for _, s := range r.src.Entries {
		key, ok := r.overrideKey(s)
		if !ok || used[key] {
			continue
		}

		used[key] = true
		ref := r.e.cfg.Overrides[key]

		t, ok := r.tgt.Lookup(ref)
		if !ok {
			diags.AddWarning(diagnostic.KindOverrideUnresolved, s.Property.Path,
				fmt.Sprintf("override target %q not found in target model", ref))

			continue
		}

		if !r.claims.Claim(t.Position) {
			diags.AddWarning(diagnostic.KindOverrideUnresolved, s.Property.Path,
				fmt.Sprintf("override target %q already claimed by another override", ref))

			continue
		}

		r.e.log.Debug("override", "source", s.Property.Path, "target", t.Property.Path)
		out[s.Position] = Match{Source: s, Target: t, Evidence: ExplicitOverride{Key: key}}
	}

	stale := common.Filter(common.SortedKeys(r.e.cfg.Overrides), func(key string) bool { return !used[key] })

	for _, key := range stale {
		diags.AddWarning(diagnostic.KindOverrideUnresolved, key,
			fmt.Sprintf("override source %q not found in source model", key))
	}

	return out
}

// overrideKey finds the override configured for s, trying its dotted path,
// its notation path and its URI.
func (r *run) overrideKey(s model.Entry) (string, bool) {
	for _, key := range []string{s.Property.Path, s.Path.Notation(), s.Property.ID} {
		if _, ok := r.e.cfg.Overrides[key]; ok {
			return key, true
		}
	}

	return "", false
}

// candidates returns the unclaimed targets of the strongest cascade level
// that has any.
func (r *run) candidates(s model.Entry) CandidateList {
	p := s.Property

	if p.Characteristic != "" {
		if c := r.indexed(r.byChar[p.Characteristic], CharacteristicMatch{Characteristic: p.Characteristic}); !common.IsEmpty(c) {
			return c
		}
	}

	if keys := r.e.nameKeys(p.PreferredName); !common.IsEmpty(keys) {
		if c := r.named(keys); !common.IsEmpty(c) {
			return c
		}
	}

	if p.LocalName != "" {
		local := strings.ToLower(p.LocalName)
		if c := r.indexed(r.byLocal[local], LocalNameMatch{Name: local}); !common.IsEmpty(c) {
			return c
		}
	}

	return r.described(p)
}

func (r *run) indexed(positions []int, ev Evidence) CandidateList {
	var out CandidateList

	for _, pos := range positions {
		if !r.claims.Claimed(pos) {
			out = append(out, Candidate{Target: r.tgt.Entries[pos], Evidence: ev})
		}
	}

	return out
}

// named merges the preferred-name buckets of keys in target declaration
// order.
func (r *run) named(keys []string) CandidateList {
	var out CandidateList

	seen := make(map[int]bool)

	for _, key := range keys {
		for _, c := range r.indexed(r.byName[key], PreferredNameMatch{Normalized: key}) {
			if !seen[c.Target.Position] {
				seen[c.Target.Position] = true
				out = append(out, c)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Target.Position < out[j].Target.Position
	})

	return out
}

// described scans every unclaimed target for a similar description.
func (r *run) described(p *model.Property) CandidateList {
	if p.Description == "" {
		return nil
	}

	var out CandidateList

	for _, t := range r.tgt.Entries {
		if t.Property.Description == "" || r.claims.Claimed(t.Position) {
			continue
		}

		score := ScoreDescriptions(p.Description, t.Property.Description)
		if score >= MinDescriptionSimilarity {
			out = append(out, Candidate{Target: t, Evidence: DescriptionSimilarity{Score: score}})
		}
	}

	return out
}
