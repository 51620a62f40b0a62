package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field type alias so callers don't import zap directly
type Field = zap.Field

// DriverID tags an entry with the driver it concerns
func DriverID(id string) Field {
	return zap.String("driver_id", id)
}

// TripID tags an entry with a trip request id
func TripID(id string) Field {
	return zap.String("trip_id", id)
}

// TransactionID tags an entry with a deposit transaction id
func TransactionID(id string) Field {
	return zap.String("transaction_id", id)
}

// Rupiah carries an amount in rupiah
func Rupiah(key string, amount int64) Field {
	return zap.Int64(key, amount)
}

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}
