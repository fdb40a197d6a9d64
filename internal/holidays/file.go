package holidays

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/workday-calendar/internal/calendar"
	"go.uber.org/zap"
	yaml "go.yaml.in/yaml/v3"
)

// FileSource reads holidays from a local file.
//
// Text files hold one entry per line, '#' starts a comment:
//
//	2004-05-27 Ascension Day
//	05-17 Constitution Day
//
// Files ending in .yaml or .yml use the yamlHolidayFile layout.
type FileSource struct {
	filePath string
	logger   *zap.Logger
}

type yamlHolidayFile struct {
	Specific  []yamlHoliday `yaml:"specific"`
	Recurring []yamlHoliday `yaml:"recurring"`
}

type yamlHoliday struct {
	Date string `yaml:"date"`
	Note string `yaml:"note"`
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

func (fs *FileSource) Name() string {
	return "file:" + fs.filePath
}

// Load loads holidays from file
func (fs *FileSource) Load(ctx context.Context) (*Set, error) {
	ext := strings.ToLower(filepath.Ext(fs.filePath))
	if ext == ".yaml" || ext == ".yml" {
		return fs.loadYAML()
	}
	return fs.loadText()
}

func (fs *FileSource) loadText() (*Set, error) {
	file, err := os.Open(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	set := &Set{}
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: DATE [note], DATE is YYYY-MM-DD or MM-DD
		dateStr := strings.Fields(line)[0]
		if err := fs.addEntry(set, dateStr); err != nil {
			fs.logger.Warn("Skipping invalid holiday line",
				zap.String("file", fs.filePath),
				zap.Int("line", lineNo),
				zap.String("content", line),
				zap.Error(err))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday file: %w", err)
	}

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("specific", len(set.Specific)),
		zap.Int("recurring", len(set.Recurring)))

	return set, nil
}

func (fs *FileSource) loadYAML() (*Set, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday file: %w", err)
	}

	var doc yamlHolidayFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse holiday file: %w", err)
	}

	set := &Set{}
	for _, h := range doc.Specific {
		date, err := calendar.ParseDate(h.Date)
		if err != nil {
			fs.logger.Warn("Skipping invalid specific holiday",
				zap.String("file", fs.filePath),
				zap.String("date", h.Date),
				zap.Error(err))
			continue
		}
		set.Specific = append(set.Specific, date)
	}
	for _, h := range doc.Recurring {
		md, err := calendar.ParseMonthDay(h.Date)
		if err != nil {
			fs.logger.Warn("Skipping invalid recurring holiday",
				zap.String("file", fs.filePath),
				zap.String("date", h.Date),
				zap.Error(err))
			continue
		}
		set.Recurring = append(set.Recurring, md)
	}

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("specific", len(set.Specific)),
		zap.Int("recurring", len(set.Recurring)))

	return set, nil
}

func (fs *FileSource) addEntry(set *Set, dateStr string) error {
	switch len(dateStr) {
	case len("2006-01-02"):
		date, err := calendar.ParseDate(dateStr)
		if err != nil {
			return err
		}
		set.Specific = append(set.Specific, date)
	case len("01-02"):
		md, err := calendar.ParseMonthDay(dateStr)
		if err != nil {
			return err
		}
		set.Recurring = append(set.Recurring, md)
	default:
		return fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD, DD.MM.YYYY or MM-DD", dateStr)
	}
	return nil
}
