// Package errs memetakan error dari store (GORM/pgx) ke kind terstruktur.
// Kind adalah diskriminator utama; pencocokan substring pesan hanya fallback
// kompatibilitas untuk driver yang tidak mengembalikan kode terstruktur.
package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind int

const (
	Unknown Kind = iota
	Unauthenticated
	NotFound
	Conflict
	RateLimited
	InvalidInput
	InvalidOTP
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "UNAUTHENTICATED"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	case RateLimited:
		return "RATE_LIMITED"
	case InvalidInput:
		return "INVALID_INPUT"
	case InvalidOTP:
		return "INVALID_OTP"
	default:
		return "UNKNOWN"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New membuat error dengan kind eksplisit.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap membungkus error store dengan kind hasil klasifikasi (atau kind
// eksplisit bila diberikan lewat WrapKind).
func Wrap(message string, err error) *Error {
	return &Error{Kind: Classify(err), Message: message, Err: err}
}

func WrapKind(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf mengembalikan kind dari error apa pun.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Classify(err)
}

// Postgres SQLSTATE codes.
const (
	pgUniqueViolation   = "23505"
	pgUndefinedTable    = "42P01"
	pgNotNullViolation  = "23502"
	pgCheckViolation    = "23514"
	pgFKViolation       = "23503"
	pgInvalidTextRep    = "22P02"
	pgStringTooLong     = "22001"
	pgInsufficientPrivs = "42501"
)

// Classify menentukan kind dari error driver. Kode SQLSTATE dicek dulu,
// substring pesan hanya jalan terakhir.
func Classify(err error) Kind {
	if err == nil {
		return Unknown
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Conflict
		case pgUndefinedTable:
			return NotFound
		case pgNotNullViolation, pgCheckViolation, pgFKViolation, pgInvalidTextRep, pgStringTooLong:
			return InvalidInput
		case pgInsufficientPrivs:
			return Unauthenticated
		}
		return Unknown
	}

	// Fallback legacy: pencocokan teks pesan (driver tanpa kode terstruktur).
	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "duplicate key"), strings.Contains(low, "unique constraint"),
		strings.Contains(low, "already registered"):
		return Conflict
	case strings.Contains(low, "does not exist"), strings.Contains(low, "undefined table"),
		strings.Contains(low, "no such table"):
		return NotFound
	case strings.Contains(low, "rate limit"), strings.Contains(low, "too many requests"):
		return RateLimited
	case strings.Contains(low, "invalid login credentials"):
		return Unauthenticated
	}
	return Unknown
}

// HTTPStatus memetakan kind ke status Fiber untuk layer controller.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return fiber.StatusUnauthorized
	case NotFound:
		return fiber.StatusNotFound
	case Conflict:
		return fiber.StatusConflict
	case RateLimited:
		return fiber.StatusTooManyRequests
	case InvalidInput, InvalidOTP:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
