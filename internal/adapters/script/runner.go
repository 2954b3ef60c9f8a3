// Package script evaluates scripted packages written in Starlark.
//
// A script may declare top-level meta and properties dicts and must define
// evaluate(input), which returns a dict with relations, addons and notices.
package script

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMaxSteps bounds the work a single script execution may perform.
const DefaultMaxSteps = 10_000_000

const evaluateFunc = "evaluate"

// Runner executes package scripts.
type Runner struct {
	logger   ports.Logger
	validate *validator.Validate
	maxSteps uint64
}

// New creates a Runner. Script print output is forwarded to the debug log.
func New(logger ports.Logger) *Runner {
	return &Runner{
		logger:   logger,
		validate: newValidator(),
		maxSteps: DefaultMaxSteps,
	}
}

// newValidator returns a validator that also knows the addon file name tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(domain.AddonFileNameTag, func(fl validator.FieldLevel) bool {
		return domain.ValidAddonFileName(fl.Field().String())
	})
	return v
}

// WithMaxSteps overrides the execution step budget.
func (r *Runner) WithMaxSteps(steps uint64) *Runner {
	r.maxSteps = steps
	return r
}

// Run executes the script and calls evaluate with the evaluation input.
func (r *Runner) Run(
	ctx context.Context,
	id domain.PackageID,
	source []byte,
	input *domain.EvalInput,
) (*domain.EvalResult, error) {
	thread, stop := r.newThread(ctx, id)
	defer stop()

	globals, err := r.exec(thread, id, source)
	if err != nil {
		return nil, err
	}

	fn, err := evaluateFn(globals)
	if err != nil {
		return nil, scriptErr(err, id)
	}

	ret, err := starlark.Call(thread, fn, starlark.Tuple{inputStruct(input)}, nil)
	if err != nil {
		return nil, scriptErr(err, id)
	}

	return r.decodeResult(id, ret)
}

// Inspect executes the script top level and returns its meta and properties.
// The script must define evaluate but it is not called.
func (r *Runner) Inspect(
	ctx context.Context,
	id domain.PackageID,
	source []byte,
) (*domain.PackageMetadata, *domain.PackageProperties, error) {
	thread, stop := r.newThread(ctx, id)
	defer stop()

	globals, err := r.exec(thread, id, source)
	if err != nil {
		return nil, nil, err
	}
	if _, err := evaluateFn(globals); err != nil {
		return nil, nil, scriptErr(err, id)
	}

	meta := &domain.PackageMetadata{}
	if err := decodeGlobal(globals, "meta", meta); err != nil {
		return nil, nil, scriptErr(err, id)
	}
	props := &domain.PackageProperties{}
	if err := decodeGlobal(globals, "properties", props); err != nil {
		return nil, nil, scriptErr(err, id)
	}
	return meta, props, nil
}

// newThread creates a thread that is canceled together with ctx.
func (r *Runner) newThread(ctx context.Context, id domain.PackageID) (*starlark.Thread, func()) {
	thread := &starlark.Thread{
		Name: "package:" + id.String(),
		Print: func(_ *starlark.Thread, msg string) {
			r.logger.Debug(fmt.Sprintf("%s: %s", id, msg))
		},
	}
	thread.SetMaxExecutionSteps(r.maxSteps)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()
	return thread, func() { close(done) }
}

func (r *Runner) exec(thread *starlark.Thread, id domain.PackageID, source []byte) (starlark.StringDict, error) {
	predeclared := starlark.StringDict{
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
	}
	globals, err := starlark.ExecFile(thread, id.String()+".star", source, predeclared)
	if err != nil {
		return nil, scriptErr(err, id)
	}
	return globals, nil
}

func evaluateFn(globals starlark.StringDict) (starlark.Callable, error) {
	v, ok := globals[evaluateFunc]
	if !ok {
		return nil, zerr.New("script does not define evaluate(input)")
	}
	fn, ok := v.(starlark.Callable)
	if !ok {
		return nil, zerr.With(zerr.New("evaluate is not callable"), "type", v.Type())
	}
	return fn, nil
}

func scriptErr(err error, id domain.PackageID) error {
	return zerr.With(zerr.Wrap(err, domain.ErrScriptEval.Error()), "package", id.String())
}

// scriptResult is the shape evaluate must return.
type scriptResult struct {
	Relations domain.Relations `json:"relations"`
	Addons    []scriptAddon    `json:"addons" validate:"dive"`
	Notices   []string         `json:"notices"`
}

type scriptAddon struct {
	ID       string           `json:"id" validate:"required"`
	Kind     domain.AddonKind `json:"kind" validate:"required,oneof=mod resource_pack shader plugin datapack"`
	FileName string           `json:"filename" validate:"omitempty,addon_filename"`
	URL      string           `json:"url" validate:"omitempty,url"`
	Path     string           `json:"path" validate:"required_without=URL"`
	Version  string           `json:"version"`
	Hashes   domain.Hashes    `json:"hashes"`
}

func (r *Runner) decodeResult(id domain.PackageID, ret starlark.Value) (*domain.EvalResult, error) {
	if ret == starlark.None {
		return &domain.EvalResult{}, nil
	}
	if _, ok := ret.(*starlark.Dict); !ok {
		err := zerr.With(zerr.New("evaluate must return a dict"), "type", ret.Type())
		return nil, scriptErr(err, id)
	}

	var res scriptResult
	if err := decodeValue(ret, &res); err != nil {
		return nil, scriptErr(err, id)
	}
	if err := r.validate.Struct(&res); err != nil {
		return nil, scriptErr(err, id)
	}

	out := &domain.EvalResult{Relations: res.Relations, Notices: res.Notices}
	for _, a := range res.Addons {
		out.Addons = append(out.Addons, domain.SelectedAddon{
			ID:       a.ID,
			Kind:     a.Kind,
			FileName: a.FileName,
			URL:      a.URL,
			Path:     a.Path,
			Version:  a.Version,
			Hashes:   a.Hashes,
		})
	}
	return out, nil
}

func decodeGlobal(globals starlark.StringDict, name string, dst any) error {
	v, ok := globals[name]
	if !ok || v == starlark.None {
		return nil
	}
	if err := decodeValue(v, dst); err != nil {
		return zerr.With(err, "global", name)
	}
	return nil
}

// decodeValue converts v to plain Go data and decodes it into dst through JSON,
// so scripts and declarative packages share one set of decoding rules.
func decodeValue(v starlark.Value, dst any) error {
	plain, err := fromStarlarkValue(v)
	if err != nil {
		return err
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return zerr.Wrap(err, "failed to encode script value")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return zerr.Wrap(err, "script returned an invalid value")
	}
	return nil
}
