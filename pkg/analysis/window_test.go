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

package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowFIFOEviction(t *testing.T) {
	w := newWindow(5)
	for i := 0; i < 8; i++ {
		w.push(DataPoint{Value: float64(i), Timestamp: int64(i)})
	}

	require.Equal(t, 5, w.len())
	require.Equal(t, []float64{3, 4, 5, 6, 7}, w.values())

	points := w.points()
	require.Len(t, points, 5)
	require.Equal(t, int64(3), points[0].Timestamp)
	require.Equal(t, int64(7), points[4].Timestamp)
}

func TestWindowLastN(t *testing.T) {
	w := newWindow(10)
	for i := 0; i < 7; i++ {
		w.push(DataPoint{Value: float64(i)})
	}

	last3 := w.lastN(3)
	require.Equal(t, []DataPoint{{Value: 4}, {Value: 5}, {Value: 6}}, last3)

	// asking for more than held returns everything
	require.Len(t, w.lastN(20), 7)

	last, ok := w.last()
	require.True(t, ok)
	require.Equal(t, 6.0, last.Value)
}

func TestWindowEmpty(t *testing.T) {
	w := newWindow(3)
	require.Equal(t, 0, w.len())
	require.Empty(t, w.values())
	_, ok := w.last()
	require.False(t, ok)
}

func TestWindowWrapAround(t *testing.T) {
	w := newWindow(3)
	for i := 0; i < 100; i++ {
		w.push(DataPoint{Value: float64(i)})
	}
	require.Equal(t, []float64{97, 98, 99}, w.values())
}
