package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/siftlab/sift/internal/conformance"
	"github.com/siftlab/sift/internal/schema"
)

// LoadMode controls how errors are handled during model loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the results of loading model definitions from a
// directory.
type LoadResult struct {
	// Models maps model names to their compiled serializers.
	Models map[string]*schema.StructSerializer

	// Order lists model names in declaration order.
	Order []string

	// FileCount is the number of CUE files found.
	FileCount int
}

// LoadError represents an error that occurred during model loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
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

	// Model validation errors
	ErrCodeModelEmpty   = "E101" // Model declares no fields
	ErrCodeInvalidField = "E102" // Field declaration invalid
	ErrCodeNoModels     = "E103" // No models found
)

// fieldDecl mirrors the CUE field declaration shape.
type fieldDecl struct {
	Member         string            `json:"member"`
	Key            string            `json:"key,omitempty"`
	Type           string            `json:"type"`
	Representation string            `json:"representation,omitempty"`
	Keys           *fieldDecl        `json:"keys,omitempty"`
	Values         *fieldDecl        `json:"values,omitempty"`
	Elements       *fieldDecl        `json:"elements,omitempty"`
	Enum           string            `json:"enum,omitempty"`
	Names          map[string]string `json:"names,omitempty"`
}

// modelDecl mirrors the CUE model declaration shape.
type modelDecl struct {
	Fields []fieldDecl `json:"fields"`
}

// LoadModels loads and compiles CUE model definitions from a directory.
// Models are declared under the top-level "model" struct, one entry per
// model name. If mode is LoadModeFailFast, returns on first error.
func LoadModels(dir string, mode LoadMode) (*LoadResult, []error) {
	var errs []error

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("models directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing models directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

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

	result := &LoadResult{
		Models:    make(map[string]*schema.StructSerializer),
		FileCount: len(cueFiles),
	}

	modelsVal := value.LookupPath(cue.ParsePath("model"))
	if modelsVal.Exists() {
		iter, iterErr := modelsVal.Fields()
		if iterErr != nil {
			errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating models: %v", iterErr)})
			return result, errs
		}
		for iter.Next() {
			name := iter.Label()
			model, compileErr := compileModel(name, iter.Value())
			if compileErr != nil {
				errs = append(errs, compileErr)
				if mode == LoadModeFailFast {
					return result, errs
				}
				continue
			}
			result.Models[name] = model
			result.Order = append(result.Order, name)
		}
	}

	if len(result.Models) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeNoModels, Message: "no models found in definitions"})
	}

	return result, errs
}

// compileModel decodes one CUE model declaration and builds its
// serializer.
func compileModel(name string, v cue.Value) (*schema.StructSerializer, *LoadError) {
	var decl modelDecl
	if err := v.Decode(&decl); err != nil {
		return nil, &LoadError{
			Code:    ErrCodeInvalidField,
			Message: fmt.Sprintf("model %s: %v", name, err),
			Pos:     v.Pos(),
		}
	}
	if len(decl.Fields) == 0 {
		return nil, &LoadError{
			Code:    ErrCodeModelEmpty,
			Message: fmt.Sprintf("model %s declares no fields", name),
			Pos:     v.Pos(),
		}
	}

	spec := conformance.ModelSpec{Name: name}
	for i, f := range decl.Fields {
		fs, err := convertFieldDecl(&f)
		if err != nil {
			return nil, &LoadError{
				Code:    ErrCodeInvalidField,
				Message: fmt.Sprintf("model %s, field %d: %v", name, i, err),
				Pos:     v.Pos(),
			}
		}
		spec.Fields = append(spec.Fields, *fs)
	}

	model, err := conformance.BuildModel(spec)
	if err != nil {
		return nil, &LoadError{
			Code:    ErrCodeInvalidField,
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}
	return model, nil
}

// convertFieldDecl maps a CUE field declaration to a conformance field
// spec, parsing enum ordinals from their string keys.
func convertFieldDecl(f *fieldDecl) (*conformance.FieldSpec, error) {
	out := &conformance.FieldSpec{
		Member:         f.Member,
		Key:            f.Key,
		Type:           f.Type,
		Representation: f.Representation,
		Enum:           f.Enum,
	}

	if len(f.Names) > 0 {
		out.Names = make(map[int64]string, len(f.Names))
		for k, v := range f.Names {
			ordinal, err := strconv.ParseInt(k, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("enum ordinal %q is not an integer", k)
			}
			out.Names[ordinal] = v
		}
	}

	for _, sub := range []struct {
		decl *fieldDecl
		dst  **conformance.FieldSpec
		name string
	}{
		{f.Keys, &out.Keys, "keys"},
		{f.Values, &out.Values, "values"},
		{f.Elements, &out.Elements, "elements"},
	} {
		if sub.decl == nil {
			continue
		}
		converted, err := convertFieldDecl(sub.decl)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sub.name, err)
		}
		*sub.dst = converted
	}

	return out, nil
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
