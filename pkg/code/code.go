package code

import (
	"fmt"
)

// Code is a registered API result code. Error codes carry the HTTP status
// they are served with, a localized message and optional payload data or
// details.
type Code struct {
	code        int
	httpStatus  int
	status      bool
	Lang        lang
	data        interface{}
	haveData    bool
	details     []string
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers an error code. Registering the same code twice is a
// programming mistake and panics at init time.
func NewError(code int, httpStatus int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already registered", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, httpStatus: httpStatus, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code.
func NewSuss(code int, httpStatus int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("success code %d already registered", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, httpStatus: httpStatus, status: true, Lang: l}
}

// Clone returns a copy without data or details, so the shared registered
// value is never mutated through WithData/WithDetails.
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		httpStatus: e.httpStatus,
		status:     e.status,
		Lang:       e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

// Is matches codes by their numeric value, so a cloned code carrying
// details still matches its registered original under errors.Is.
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	return ok && t.code == e.code
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

// StatusCode returns the HTTP status this code is served with.
func (e *Code) StatusCode() int {
	return e.httpStatus
}
