// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package cache

import (
	"crypto/sha256"
	"fmt"

	"github.com/goccy/go-json"
)

// Key derives a compact cache key from a namespace and a JSON-encodable
// value. Equal values always produce equal keys.
func Key(namespace string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", namespace, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", namespace, hash[:16])
}
