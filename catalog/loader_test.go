// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/artistfinder/avl"
)

func TestParseArtist(t *testing.T) {
	var tests = []struct {
		name    string
		line    string
		want    Artist
		wantErr bool
	}{
		{
			name: "full row",
			line: "3,Camarón de la Isla,Male,Spain,Flamenco,6120",
			want: Artist{ID: 3, Name: "Camarón de la Isla", Gender: "Male", Country: "Spain", Styles: "Flamenco", Playcount: 6120},
		},
		{
			name: "padded numbers",
			line: " 8 ,Bebe,Female,Spain,Pop|Flamenco, 980 ",
			want: Artist{ID: 8, Name: "Bebe", Gender: "Female", Country: "Spain", Styles: "Pop|Flamenco", Playcount: 980},
		},
		{
			name: "empty text fields",
			line: "9,,,,,0",
			want: Artist{ID: 9},
		},
		{name: "too few fields", line: "21,Short Row,Male", wantErr: true},
		{name: "bad id", line: "x,Name,Male,Spain,Pop,1", wantErr: true},
		{name: "bad playcount", line: "64,Love of Lesbian,Group,Spain,Indie|Pop,bad", wantErr: true},
		{name: "playcount takes the remainder", line: "1,a,b,c,d,5,6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArtist(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadArtists(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "artists.csv"))
	require.NoError(t, err)
	defer file.Close()

	var ids []int
	seen := map[int]bool{}
	stats, err := ReadArtists(file, func(a Artist) error {
		if seen[a.ID] {
			return fmt.Errorf("id %d: %w", a.ID, avl.ErrDuplicateKey)
		}
		seen[a.ID] = true
		ids = append(ids, a.ID)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []int{40, 12, 77, 55, 3, 91, 8}, ids)
	assert.Equal(t, 11, stats.Rows)
	assert.Equal(t, 7, stats.Loaded)
	assert.Equal(t, 3, stats.Malformed)
	assert.Equal(t, 1, stats.Duplicates)
}

func TestReadArtistsStopsOnCallbackError(t *testing.T) {
	input := "header\n1,a,b,c,d,1\n2,a,b,c,d,2\n3,a,b,c,d,3\n"
	boom := errors.New("boom")

	calls := 0
	stats, err := ReadArtists(strings.NewReader(input), func(a Artist) error {
		calls++
		if a.ID == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, stats.Loaded)
}

func TestReadArtistsHeaderOnly(t *testing.T) {
	stats, err := ReadArtists(strings.NewReader("id,name,gender,country,styles,playcount"), func(Artist) error {
		t.Fatal("callback must not run")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

func TestReadArtistsCRLF(t *testing.T) {
	input := "header\r\n5,Mecano,Group,Spain,Pop,2870\r\n"
	var got Artist
	_, err := ReadArtists(strings.NewReader(input), func(a Artist) error {
		got = a
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2870, got.Playcount)
}

func TestReadIDs(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "probe.csv"))
	require.NoError(t, err)
	defer file.Close()

	ids, err := ReadIDs(file)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 40, 91, 1000}, ids)
}

func TestCountLines(t *testing.T) {
	dir := t.TempDir()

	var tests = []struct {
		content string
		want    int
	}{
		{"", 0},
		{"one", 1},
		{"one\n", 1},
		{"one\ntwo", 2},
		{"one\ntwo\n\n", 3},
	}

	for i, tt := range tests {
		path := filepath.Join(dir, fmt.Sprintf("f%d.csv", i))
		require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

		got, err := CountLines(path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "content %q", tt.content)
	}

	_, err := CountLines(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
