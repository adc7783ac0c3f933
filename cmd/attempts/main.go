// Command attempts summarizes recorded attempt logs: one line per game and
// configuration with attempt counts and accuracy/time aggregates.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

type summary struct {
	game      string
	configKey string

	attempts     int
	sessions     int
	distances    []float64
	meanTime     float64
	meanStrength float64
}

func (s *summary) String() string {
	return fmt.Sprintf("%s %s: %d attempts (%d sessions) distance mean=%.3f median=%.3f time mean=%.2fs strength mean=%.1f%%",
		s.game, s.configKey, s.attempts, s.sessions,
		mean(s.distances), median(s.distances), s.meanTime, s.meanStrength*100)
}

func main() {
	records := flag.String("records", "records", "base directory of attempt logs")
	game := flag.String("game", "", "restrict to one game directory (e.g. noise_2d)")
	flag.Parse()

	summaries, err := load(*records, *game)
	if err != nil {
		log.Fatal(err)
	}
	if len(summaries) == 0 {
		fmt.Println("no attempts recorded")
		return
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].game != summaries[j].game {
			return summaries[i].game < summaries[j].game
		}
		return summaries[i].configKey < summaries[j].configKey
	})
	for _, s := range summaries {
		fmt.Println(s)
	}
}

func load(base, game string) ([]*summary, error) {
	var summaries []*summary
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".csv") {
			return err
		}
		dir := filepath.Base(filepath.Dir(path))
		if game != "" && dir != game {
			return nil
		}
		s, err := summarize(path, dir)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if s.attempts > 0 {
			summaries = append(summaries, s)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	return summaries, err
}

func summarize(path, game string) (*summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	s := &summary{
		game:      game,
		configKey: strings.TrimSuffix(filepath.Base(path), ".csv"),
	}
	sessions := map[string]bool{}
	var timeSum, strengthSum float64
	for _, row := range rows {
		if len(row) != 4 {
			return nil, fmt.Errorf("row has %d fields, want 4", len(row))
		}
		distance, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		seconds, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, err
		}
		strength, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, err
		}
		sessions[row[0]] = true
		s.attempts++
		s.distances = append(s.distances, distance)
		timeSum += seconds
		strengthSum += strength
	}
	if s.attempts > 0 {
		s.meanTime = timeSum / float64(s.attempts)
		s.meanStrength = strengthSum / float64(s.attempts)
	}
	s.sessions = len(sessions)
	return s, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
