/*
 * Copyright (C) 2024 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertToFloat64(t *testing.T) {
	for _, input := range []interface{}{42.0, float32(42), int64(42), int32(42), uint64(42), uint32(42), 42, "42"} {
		value, err := ConvertToFloat64(input)
		require.NoError(t, err, "input %v", input)
		require.Equal(t, 42.0, value, "input %v", input)
	}

	_, err := ConvertToFloat64("not a number")
	require.Error(t, err)
	_, err = ConvertToFloat64(nil)
	require.Error(t, err)
	_, err = ConvertToFloat64(struct{}{})
	require.Error(t, err)
}

func TestConvertToInt64(t *testing.T) {
	for _, input := range []interface{}{int64(7), int32(7), 7, uint64(7), uint32(7), 7.9, float32(7), "7"} {
		value, err := ConvertToInt64(input)
		require.NoError(t, err, "input %v", input)
		require.Equal(t, int64(7), value, "input %v", input)
	}

	_, err := ConvertToInt64("seven")
	require.Error(t, err)
	_, err = ConvertToInt64(nil)
	require.Error(t, err)
}

func TestConvertToString(t *testing.T) {
	require.Equal(t, "cpu", ConvertToString("cpu"))
	require.Equal(t, "17", ConvertToString(17))
	require.Equal(t, "true", ConvertToString(true))
}
