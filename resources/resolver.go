package resources

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteCounter counts the number of bytes written to it, and every 10 seconds,
// it prints a message reporting the number of bytes written so far.
type WriteCounter struct {
	Total    uint64
	Last     time.Time
	Reported bool
	Path     string
	Size     uint64
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	if time.Now().Sub(wc.Last).Seconds() > 10 {
		wc.Reported = true
		wc.Last = time.Now()
		log.Print(fmt.Sprintf("Downloading %s... %s / %s completed.",
			wc.Path, humanize.Bytes(wc.Total), humanize.Bytes(wc.Size)))
	}
	return n, nil
}

type CorpusSource uint8

const (
	CORPUS_EMBEDDED CorpusSource = iota
	CORPUS_FILE
	CORPUS_REMOTE
)

// Corpus is raw text to train on or tokenize. File backed corpora are
// memory mapped until Cleanup is called.
type Corpus struct {
	Name   string
	Source CorpusSource
	Data   *[]byte
	file   *os.File
}

// Text copies the corpus out as a string, so it stays valid after Cleanup.
func (corpus *Corpus) Text() string {
	if corpus.Data == nil {
		return ""
	}
	return string(*corpus.Data)
}

// Size returns the corpus size in bytes.
func (corpus *Corpus) Size() uint64 {
	if corpus.Data == nil {
		return 0
	}
	return uint64(len(*corpus.Data))
}

func (corpus *Corpus) Cleanup() {
	if corpus.file == nil {
		return
	}
	if corpus.Data != nil && len(*corpus.Data) > 0 {
		if err := unmapBytes(corpus.Data); err != nil {
			log.Printf("error unmapping `%s`: %v", corpus.Name, err)
		}
	}
	corpus.Data = nil
	corpus.file.Close()
	corpus.file = nil
}

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}

	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// OpenCorpusFile
// Memory maps the file at `path` as a Corpus.
func OpenCorpusFile(path string) (*Corpus, error) {
	handle, openErr := os.Open(path)
	if openErr != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, openErr)
	}
	stat, statErr := handle.Stat()
	if statErr != nil {
		handle.Close()
		return nil, fmt.Errorf("error reading %s: %w", path, statErr)
	}
	corpus := &Corpus{Name: path, Source: CORPUS_FILE, file: handle}
	if stat.Size() == 0 {
		// Zero length files cannot be mapped.
		empty := make([]byte, 0)
		corpus.Data = &empty
		return corpus, nil
	}
	data, mmapErr := readMmap(handle)
	if mmapErr != nil {
		handle.Close()
		return nil, errors.New(
			fmt.Sprintf("error trying to mmap file: %s", mmapErr))
	}
	corpus.Data = data
	return corpus, nil
}

// FetchCorpus
// Downloads the corpus at `uri`, logging progress for large downloads.
func FetchCorpus(uri string, auth string) (*Corpus, error) {
	size, sizeErr := SizeHTTP(uri, auth)
	if sizeErr != nil {
		log.Printf("cannot size `%s`, downloading anyway: %v", uri, sizeErr)
	}
	reader, fetchErr := FetchHTTP(uri, auth)
	if fetchErr != nil {
		return nil, fmt.Errorf("cannot retrieve `%s`: %w", uri, fetchErr)
	}
	defer reader.Close()

	counter := &WriteCounter{
		Last: time.Now(),
		Path: uri,
		Size: uint64(size),
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))
	bytesDownloaded, ioErr := io.Copy(buf, io.TeeReader(reader, counter))
	if ioErr != nil {
		return nil, fmt.Errorf("error downloading `%s`: %w", uri, ioErr)
	}
	if counter.Reported {
		log.Printf("Downloaded %s... %s completed.", uri,
			humanize.Bytes(uint64(bytesDownloaded)))
	}
	data := buf.Bytes()
	return &Corpus{Name: uri, Source: CORPUS_REMOTE, Data: &data}, nil
}

// ResolveCorpus
// Resolves `uri` to a corpus, trying the resources embedded in the binary
// first, then http(s) URLs, then the local filesystem.
func ResolveCorpus(uri string) (*Corpus, error) {
	if uri == "" {
		return nil, errors.New("empty corpus uri")
	}
	if exists, _ := EmbeddedExists(uri); exists {
		return &Corpus{
			Name:   uri,
			Source: CORPUS_EMBEDDED,
			Data:   GetEmbeddedResource(uri),
		}, nil
	}
	if isValidUrl(uri) {
		return FetchCorpus(uri, os.Getenv("CORPUS_AUTH_TOKEN"))
	}
	return OpenCorpusFile(uri)
}
