package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/aisp/internal/rosetta"
)

// LoadMode controls how errors are handled during mapping pack loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadError represents an error that occurred during mapping pack loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Mapping validation errors
	ErrCodeNoPatterns  = "E101" // Mapping has no patterns
	ErrCodeBadCategory = "E102" // Unknown category
	ErrCodeDecode      = "E103" // Mapping field has wrong shape
)

// cueMapping is the shape of one entry in a CUE mapping pack:
//
//	mapping: "⊗": {
//		category: "math"
//		patterns: ["tensor product", "tensor"]
//	}
//
// The struct label is the symbol; the first pattern is the canonical
// reverse phrase.
type cueMapping struct {
	Category   string   `json:"category"`
	Patterns   []string `json:"patterns"`
	Precedence int      `json:"precedence"`
}

// LoadCUEMappings loads mapping entries from a directory of CUE files.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
func LoadCUEMappings(dir string, mode LoadMode) ([]rosetta.Entry, []error) {
	var errs []error

	// Verify directory exists
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("mappings directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing mappings directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	// Find CUE files
	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	// Load CUE instances
	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	// Extract mappings
	mappingsVal := value.LookupPath(cue.ParsePath("mapping"))
	if !mappingsVal.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: "no mapping field found in CUE pack"}}
	}

	iter, iterErr := mappingsVal.Fields()
	if iterErr != nil {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating mappings: %v", iterErr)}}
	}

	var entries []rosetta.Entry
	for iter.Next() {
		symbol := iter.Selector().Unquoted()

		var m cueMapping
		if err := iter.Value().Decode(&m); err != nil {
			errs = append(errs, &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("mapping %q: %v", symbol, err)})
			if mode == LoadModeFailFast {
				return nil, errs
			}
			continue
		}

		packEntries, packErrs := mappingEntries(symbol, m)
		if len(packErrs) > 0 {
			errs = append(errs, packErrs...)
			if mode == LoadModeFailFast {
				return nil, errs
			}
			continue
		}
		entries = append(entries, packEntries...)
	}

	if len(entries) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no mappings found in CUE pack"})
	}

	return entries, errs
}

// mappingEntries validates one CUE mapping and expands it into table entries,
// first pattern canonical.
func mappingEntries(symbol string, m cueMapping) ([]rosetta.Entry, []error) {
	var errs []error
	if len(m.Patterns) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeNoPatterns, Message: fmt.Sprintf("mapping %q has no patterns", symbol)})
	}
	cat := rosetta.Category(m.Category)
	if !rosetta.ValidCategories[cat] {
		errs = append(errs, &LoadError{Code: ErrCodeBadCategory, Message: fmt.Sprintf("mapping %q: unknown category %q", symbol, m.Category)})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	entries := make([]rosetta.Entry, 0, len(m.Patterns))
	for i, p := range m.Patterns {
		entries = append(entries, rosetta.Entry{
			Phrase:     p,
			Symbol:     symbol,
			Category:   cat,
			Precedence: m.Precedence,
			Canonical:  i == 0,
		})
	}
	return entries, nil
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
