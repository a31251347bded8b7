package engine

import (
	"errors"

	"github.com/swipecore/swipecore/dictionary"
	"github.com/swipecore/swipecore/gesture"
	"github.com/swipecore/swipecore/idealpath"
	"github.com/swipecore/swipecore/keyboard"
)

// Engine is the orchestration facade: one KeyboardLayout, one Dictionary,
// one IdealPathGenerator cache, and one ScoringConfig. An Engine is not
// thread-safe; one logical caller owns it at a time, and Recognize must not
// be called concurrently on the same instance.
type Engine struct {
	initialized bool

	layout keyboard.KeyboardLayout
	dict   dictionary.Dictionary
	gen    *idealpath.Generator
	config ScoringConfig

	lastErr LastError
	onError ErrorCallback
}

// New returns an uninitialized Engine. Init or InitWithData must succeed
// before Recognize or UpdateLayout do anything but fail. Configure may be
// called before Init; the stored config is used by the next Init.
func New() *Engine {
	return &Engine{
		config: DefaultScoringConfig(),
	}
}

// Init validates layout, loads the dictionary at dictPath, and puts the
// Engine in the initialized state. On failure it records LastError and
// returns false; the Engine remains uninitialized (or reverts to its prior
// state if this was a re-init).
func (e *Engine) Init(layout keyboard.KeyboardLayout, dictPath string) bool {
	dict, err := dictionary.Load(dictPath)
	if err != nil {
		e.recordError(dictErrorCode(err), err.Error())
		return false
	}
	return e.initWith(layout, dict)
}

// InitWithData is Init without a filesystem dependency: dictData is decoded
// directly, e.g. for dictionaries embedded at build time or fetched over a
// network the host, not the core, manages.
func (e *Engine) InitWithData(layout keyboard.KeyboardLayout, dictData []byte) bool {
	dict, err := dictionary.Decode(dictData)
	if err != nil {
		e.recordError(dictErrorCode(err), err.Error())
		return false
	}
	return e.initWith(layout, dict)
}

func (e *Engine) initWith(layout keyboard.KeyboardLayout, dict dictionary.Dictionary) bool {
	if !layout.IsValid() {
		e.recordError(ErrorLayoutInvalid, "keyboard layout failed validation")
		return false
	}

	gen := idealpath.NewGenerator(gesture.Options{
		ResampleCount:      e.config.ResampleCount,
		MinPointDistanceDp: e.config.MinPointDistanceDp,
		MaxGesturePoints:   gesture.DefaultOptions().MaxGesturePoints,
	})
	gen.SetLayout(layout)

	e.layout = layout
	e.dict = dict
	e.gen = gen
	e.initialized = true
	e.lastErr = LastError{}
	return true
}

// UpdateLayout validates layout, replaces the held layout, and clears the
// ideal-path cache. The dictionary is untouched. Returns false (and records
// LastError) if layout is invalid or the Engine is not initialized.
func (e *Engine) UpdateLayout(layout keyboard.KeyboardLayout) bool {
	if !e.initialized {
		e.recordError(ErrorNotInitialized, errNotInitialized.Error())
		return false
	}
	if !layout.IsValid() {
		e.recordError(ErrorLayoutInvalid, "keyboard layout failed validation")
		return false
	}
	e.layout = layout
	e.gen.SetLayout(layout)
	return true
}

// Configure replaces the held scoring configuration. It applies starting
// with the next Recognize call; it never fails.
func (e *Engine) Configure(config ScoringConfig) {
	e.config = config
	if e.gen != nil {
		e.gen = idealpath.NewGenerator(gesture.Options{
			ResampleCount:      config.ResampleCount,
			MinPointDistanceDp: config.MinPointDistanceDp,
			MaxGesturePoints:   gesture.DefaultOptions().MaxGesturePoints,
		})
		e.gen.SetLayout(e.layout)
	}
}

// Shutdown releases the Engine's held state. A shut-down Engine behaves as
// if never initialized; it may be reused after another Init/InitWithData.
func (e *Engine) Shutdown() {
	e.initialized = false
	e.layout = keyboard.KeyboardLayout{}
	e.dict = dictionary.Dictionary{}
	e.gen = nil
}

// LastError returns the most recently recorded error. The zero value means
// no error has occurred since construction or the last successful Init.
func (e *Engine) LastError() LastError {
	return e.lastErr
}

// SetErrorCallback installs cb to be invoked synchronously, on the calling
// goroutine, at the moment an error is recorded. Passing nil disables the
// callback. The callback must never call back into this Engine.
func (e *Engine) SetErrorCallback(cb ErrorCallback) {
	e.onError = cb
}

func (e *Engine) recordError(code ErrorCode, message string) {
	e.lastErr = LastError{Code: code, Message: message}
	if e.onError != nil {
		e.onError(e.lastErr)
	}
}

// dictErrorCode maps a dictionary package sentinel to its binding-stable
// ErrorCode.
func dictErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		return ErrorDictNotFound
	case errors.Is(err, dictionary.ErrVersionMismatch):
		return ErrorDictVersionMismatch
	case errors.Is(err, dictionary.ErrCorrupt):
		return ErrorDictCorrupt
	default:
		return ErrorDictCorrupt
	}
}
