package main

import (
	"testing"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	cases := map[string]struct {
		words       []string
		expected    []int
		expectedErr bool
	}{
		"AddDelete": {
			words:    []string{"add", "0-20", "delete", "5-15", "query", "0-20", "has", "3", "vec"},
			expected: []int{20, 15, 5, 0},
		},
		"UnknownWord": {
			words:       []string{"add", "0-20", "merge", "1-2"},
			expected:    []int{20, 0},
			expectedErr: true,
		},
		"MissingArgument": {
			words:       []string{"delete"},
			expected:    []int{},
			expectedErr: true,
		},
		"InvalidRange": {
			words:       []string{"add", "20-0"},
			expected:    []int{},
			expectedErr: true,
		},
		"InvalidValue": {
			words:       []string{"has", "x"},
			expected:    []int{},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rs := rangeset.New[int]()
			err := run(rs, tc.words)
			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expected, rs.ToVec())
		})
	}
}
