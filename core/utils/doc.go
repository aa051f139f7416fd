// Package utils provides small conversion helpers for values decoded from
// catalog objects and tables whose column types are not known in advance.
package utils
