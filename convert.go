// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package binops

import (
	"strconv"
	"strings"
)

// BinaryToDecimal returns the value of the base 2 numeral s.
//
// s must be a non-empty string of '0' and '1' characters. Leading zeros are
// allowed. Values that do not fit in 64 bits are rejected.
//
func BinaryToDecimal(s string) (uint64, error) {
	if s == "" {
		return 0, invalidInput("to-decimal", s, "binary number is empty")
	}
	if strings.Trim(s, "01") != "" {
		return 0, invalidInput("to-decimal", s, "invalid binary number "+strconv.Quote(s)+": only 0 and 1 are allowed")
	}
	n, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return 0, invalidInput("to-decimal", s, "binary number "+strconv.Quote(s)+" is out of range")
	}
	return n, nil
}

// DecimalToBinary parses s as a non-negative base 10 integer and returns its
// binary representation without leading zeros. Leading and trailing white
// space in s is ignored.
//
//	DecimalToBinary("10") // "1010"
//	DecimalToBinary("0")  // "0"
//
func DecimalToBinary(s string) (string, error) {
	t := strings.TrimSpace(s)
	if digits := strings.TrimPrefix(t, "-"); digits != t && digits != "" && strings.Trim(digits, "0123456789") == "" {
		if strings.Trim(digits, "0") != "" {
			return "", invalidInput("to-binary", s, "negative numbers are not supported")
		}
		t = digits // -0
	}
	n, err := strconv.ParseUint(t, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return "", invalidInput("to-binary", s, "decimal number "+strconv.Quote(s)+" is out of range")
		}
		return "", invalidInput("to-binary", s, "invalid decimal number "+strconv.Quote(s))
	}
	return strconv.FormatUint(n, 2), nil
}
