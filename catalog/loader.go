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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cybrota/artistfinder/avl"
)

// artist rows are id,name,gender,country,styles,playcount
const artistFields = 6

var errFieldCount = errors.New("wrong number of fields")

// Stats summarises one pass over an artists file.
type Stats struct {
	Rows       int // data rows read, header and blank lines excluded
	Loaded     int
	Malformed  int
	Duplicates int
	Elapsed    time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d rows, %d loaded, %d malformed, %d duplicates in %s",
		s.Rows, s.Loaded, s.Malformed, s.Duplicates, s.Elapsed.Round(time.Millisecond))
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}

// ParseArtist parses a single data row. The playcount takes whatever is
// left of the row after the fifth comma.
func ParseArtist(line string) (Artist, error) {
	parts := strings.SplitN(line, ",", artistFields)
	if len(parts) < artistFields {
		return Artist{}, fmt.Errorf("%w: got %d, want %d", errFieldCount, len(parts), artistFields)
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Artist{}, fmt.Errorf("artist id: %w", err)
	}
	playcount, err := strconv.Atoi(strings.TrimSpace(parts[5]))
	if err != nil {
		return Artist{}, fmt.Errorf("playcount of artist %d: %w", id, err)
	}

	return Artist{
		ID:        id,
		Name:      parts[1],
		Gender:    parts[2],
		Country:   parts[3],
		Styles:    parts[4],
		Playcount: playcount,
	}, nil
}

// ReadArtists parses r and calls fn for every well formed row. The first
// line is a header and is skipped, as are blank lines. Malformed rows are
// logged and counted, and so are rows for which fn reports
// avl.ErrDuplicateKey. Any other error from fn stops the scan and is
// returned.
func ReadArtists(r io.Reader, fn func(Artist) error) (Stats, error) {
	var stats Stats
	scanner := newScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.Rows++

		a, err := ParseArtist(line)
		if err != nil {
			log.Printf("catalog: skipping line %d: %v", lineNo, err)
			stats.Malformed++
			continue
		}
		if err := fn(a); err != nil {
			if errors.Is(err, avl.ErrDuplicateKey) {
				stats.Duplicates++
				continue
			}
			return stats, err
		}
		stats.Loaded++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading artists: %w", err)
	}
	return stats, nil
}

// ReadIDs reads the first column of a probe file, header excluded.
func ReadIDs(r io.Reader) ([]int, error) {
	var ids []int
	scanner := newScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 || line == "" {
			continue
		}
		field, _, _ := strings.Cut(line, ",")
		id, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			log.Printf("catalog: skipping line %d: %v", lineNo, err)
			continue
		}
		ids = append(ids, id)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ids: %w", err)
	}
	return ids, nil
}

// CountLines counts the lines of the file at path. A last line without a
// trailing newline is counted too.
func CountLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	count := 0
	last := byte('\n')
	buf := make([]byte, 32*1024)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if last != '\n' {
		count++
	}
	return count, nil
}
