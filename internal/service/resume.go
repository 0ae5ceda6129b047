package service

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/pkg/errors"
)

// ResumeService reads the resume PDF from disk on every request.
// Nothing is cached, so repeated reads return the file as it is on disk.
type ResumeService struct {
	fsys     fs.FS
	name     string
	fileName string
}

// NewResumeService serves name from fsys; fileName is what clients see.
func NewResumeService(fsys fs.FS, name, fileName string) *ResumeService {
	return &ResumeService{
		fsys:     fsys,
		name:     name,
		fileName: fileName,
	}
}

// NewResumeServiceFromConfig resolves resume.path against the working
// directory, or its own directory when absolute.
func NewResumeServiceFromConfig(s *server.Server) *ResumeService {
	path := filepath.Clean(s.Config.Resume.Path)

	root, name := ".", path
	if filepath.IsAbs(path) {
		root, name = filepath.Dir(path), filepath.Base(path)
	}

	return NewResumeService(os.DirFS(root), filepath.ToSlash(name), s.Config.Resume.FileName)
}

// FileName is the download name advertised to clients.
func (rs *ResumeService) FileName() string {
	return rs.fileName
}

// Path is the asset location, for logs.
func (rs *ResumeService) Path() string {
	return rs.name
}

// Load returns the resume bytes.
func (rs *ResumeService) Load() ([]byte, error) {
	data, err := fs.ReadFile(rs.fsys, rs.name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read resume %s", rs.name)
	}
	return data, nil
}
