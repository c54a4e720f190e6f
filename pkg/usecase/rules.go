package usecase

import (
	"strings"

	"github.com/m-mizutani/care/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Rule maps a key (filename suffix or classifier label keyword) to an archive type
type Rule struct {
	Key  string
	Type types.ArchiveType
}

// MatchFunc reports whether key matches the subject string
type MatchFunc func(subject, key string) bool

var (
	// MatchSuffix matches filename extensions
	MatchSuffix MatchFunc = strings.HasSuffix
	// MatchContains matches classifier label keywords
	MatchContains MatchFunc = strings.Contains
)

// DefaultExtensionRules is the built-in filename suffix table
var DefaultExtensionRules = []Rule{
	{Key: ".zip", Type: types.ZipArchive},
	{Key: ".tar", Type: types.TarArchive},
	// compressed tar is opened with transparent decompression
	{Key: ".tar.gzip", Type: types.TarArchive},
	{Key: ".tar.gz", Type: types.TarArchive},
	{Key: ".tgz", Type: types.TarArchive},
	{Key: ".tar.bzip2", Type: types.TarArchive},
	{Key: ".tar.bz2", Type: types.TarArchive},
	{Key: ".tar.xzip", Type: types.TarArchive},
	{Key: ".tar.xz", Type: types.TarArchive},
}

// DefaultLabelRules is the built-in classifier label table
var DefaultLabelRules = []Rule{
	{Key: "Zip archive", Type: types.ZipArchive},
	{Key: "tar archive", Type: types.TarArchive},
	{Key: "gzip compressed data", Type: types.TarArchive},
	{Key: "bzip2 compressed data", Type: types.TarArchive},
	{Key: "XZ compressed data", Type: types.TarArchive},
}

// RuleTable is an ordered rule list whose keys never match each other,
// so at most one rule applies to a subject
type RuleTable struct {
	match MatchFunc
	rules []Rule
}

// NewRuleTable builds a table and rejects empty keys, unknown types and
// keys overlapping another key under match
func NewRuleTable(match MatchFunc, rules ...Rule) (*RuleTable, error) {
	t := &RuleTable{match: match}
	for _, rule := range rules {
		if err := t.add(rule); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func mustRuleTable(match MatchFunc, rules ...Rule) *RuleTable {
	t, err := NewRuleTable(match, rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// NewExtensionTable returns the built-in extension table extended with extra
func NewExtensionTable(extra ...Rule) (*RuleTable, error) {
	return NewRuleTable(MatchSuffix, append(append([]Rule{}, DefaultExtensionRules...), extra...)...)
}

// NewLabelTable returns the built-in label table extended with extra
func NewLabelTable(extra ...Rule) (*RuleTable, error) {
	return NewRuleTable(MatchContains, append(append([]Rule{}, DefaultLabelRules...), extra...)...)
}

func (t *RuleTable) add(rule Rule) error {
	if rule.Key == "" {
		return goerr.New("rule key must not be empty", goerr.V("type", rule.Type))
	}
	if err := rule.Type.Validate(); err != nil {
		return goerr.Wrap(err, "invalid rule type", goerr.V("key", rule.Key))
	}

	for _, existing := range t.rules {
		if t.match(existing.Key, rule.Key) || t.match(rule.Key, existing.Key) {
			return goerr.New("rule key overlaps an existing key",
				goerr.V("key", rule.Key),
				goerr.V("existing", existing.Key),
			)
		}
	}

	t.rules = append(t.rules, rule)
	return nil
}

// Lookup returns the type of the first rule matching subject
func (t *RuleTable) Lookup(subject string) (types.ArchiveType, bool) {
	for _, rule := range t.rules {
		if t.match(subject, rule.Key) {
			return rule.Type, true
		}
	}
	return "", false
}

// Rules returns a copy of the rules in table order
func (t *RuleTable) Rules() []Rule {
	return append([]Rule{}, t.rules...)
}
