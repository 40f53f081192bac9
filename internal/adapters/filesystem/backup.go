package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/util"
)

// BackupTimeLayout is the timestamp format of backup file suffixes
const BackupTimeLayout = "20060102-150405"

const backupInfix = ".bak."

// BackupName returns the backup file name for file taken at t. Stamps are
// UTC so names keep increasing across daylight saving changes.
func BackupName(file string, t time.Time) string {
	return file + backupInfix + t.UTC().Format(BackupTimeLayout)
}

// backup copies file to its next backup name and returns that name
func (s *Store) backup(file string) (string, error) {
	data, err := util.ReadFile(s.fs, file)
	if err != nil {
		return "", err
	}
	name, err := s.nextBackupName(file)
	if err != nil {
		return "", err
	}
	if err := util.WriteFile(s.fs, name, data, 0644); err != nil {
		return "", err
	}
	return name, nil
}

// nextBackupName picks a name strictly newer than every existing backup of
// file. Saving twice within one second moves the second backup forward.
func (s *Store) nextBackupName(file string) (string, error) {
	stamp := s.now().UTC().Truncate(time.Second)

	newest, err := s.newestBackup(file)
	if err != nil {
		return "", err
	}
	if !newest.IsZero() && !stamp.After(newest) {
		stamp = newest.Add(time.Second)
	}
	return BackupName(file, stamp), nil
}

// newestBackup returns the timestamp of the latest backup of file, or the
// zero time when there is none
func (s *Store) newestBackup(file string) (time.Time, error) {
	backups, err := s.listBackups(file)
	if err != nil {
		return time.Time{}, err
	}
	var newest time.Time
	for _, b := range backups {
		if b.Taken.After(newest) {
			newest = b.Taken
		}
	}
	return newest, nil
}

// Backup describes one backup file
type Backup struct {
	Path  string
	Taken time.Time
}

// Backups lists the backups of a document, oldest first
func (s *Store) Backups(name string) ([]Backup, error) {
	spec, err := s.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.listBackups(spec.RelPath)
}

func (s *Store) listBackups(rel string) ([]Backup, error) {
	dir, base := filepath.Dir(rel), filepath.Base(rel)
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	prefix := base + backupInfix
	var backups []Backup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		taken, err := time.ParseInLocation(BackupTimeLayout, strings.TrimPrefix(entry.Name(), prefix), time.UTC)
		if err != nil {
			continue
		}
		backups = append(backups, Backup{Path: filepath.Join(dir, entry.Name()), Taken: taken})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Taken.Before(backups[j].Taken)
	})
	return backups, nil
}
