package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/melody-ding/go-vidclip/internal/types"
)

// SourceFile is a video extracted from a tar archive onto disk.
type SourceFile struct {
	Key  string
	Path string
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
}

// ExtractVideosFromTar writes every video member of the archive into
// destDir and returns them in archive order. Non-video members and macOS
// resource-fork entries are skipped.
func ExtractVideosFromTar(tarPath, destDir string) ([]SourceFile, error) {
	f, err := os.Open(tarPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tr := tar.NewReader(f)
	var sources []SourceFile

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		base := filepath.Base(hdr.Name)
		if strings.HasPrefix(base, "._") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(base))
		if !videoExtensions[ext] {
			continue
		}

		outPath := filepath.Join(destDir, base)
		out, err := os.Create(outPath)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return nil, fmt.Errorf("extract %s: %w", hdr.Name, err)
		}
		if err := out.Close(); err != nil {
			return nil, err
		}

		sources = append(sources, SourceFile{
			Key:  strings.TrimSuffix(base, ext),
			Path: outPath,
		})
	}

	return sources, nil
}

// WriteClipBundle writes the produced clip files into a tar archive at
// outPath, in record order.
func WriteClipBundle(clips []types.ClipRecord, outPath string) error {
	if len(clips) == 0 {
		return fmt.Errorf("no clips to bundle")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	tw := tar.NewWriter(f)

	for _, clip := range clips {
		data, err := os.ReadFile(clip.Path)
		if err != nil {
			tw.Close()
			f.Close()
			return fmt.Errorf("read clip %s: %w", clip.Path, err)
		}

		hdr := &tar.Header{
			Name: filepath.Base(clip.Path),
			Mode: 0644,
			Size: int64(len(data)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			tw.Close()
			f.Close()
			return fmt.Errorf("write bundle header: %w", err)
		}
		if _, err := tw.Write(data); err != nil {
			tw.Close()
			f.Close()
			return fmt.Errorf("write bundle data: %w", err)
		}
	}

	if err := tw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
