// Package recordfile implementa la persistencia de registros de forma fija
// sobre archivos de texto plano: un registro por línea, campos en orden fijo
// separados por '|'. Las operaciones son agregar al final, recorrido
// secuencial y reescritura completa; no hay actualización por clave en el
// medio de almacenamiento. Toda reescritura se hace sobre un archivo temporal
// del mismo directorio seguido de un rename atómico, de modo que una falla a
// mitad de escritura nunca trunca el almacén original.
package recordfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoMatch indica que Replace no encontró ningún registro que coincida.
var ErrNoMatch = errors.New("recordfile: ningún registro coincide")

const fieldSep = "|"

// Store almacén genérico de registros de forma fija. El mutex serializa a los
// llamadores concurrentes (el shell HTTP): el diseño del núcleo es de un solo
// usuario y exige bloqueo antes de cualquier acceso concurrente.
type Store[T any] struct {
	path string
	mu   sync.Mutex
	enc  func(*T) []string
	dec  func([]string) (*T, error)
}

// NewStore construye un almacén sobre path con el codec de la entidad.
// El archivo se crea en el primer Append/RewriteAll; un archivo ausente se
// trata como almacén vacío.
func NewStore[T any](path string, enc func(*T) []string, dec func([]string) (*T, error)) *Store[T] {
	return &Store[T]{path: path, enc: enc, dec: dec}
}

// Append agrega un registro al final del almacén.
func (s *Store[T]) Append(rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("abrir almacén %s: %w", s.path, err)
	}
	_, werr := fmt.Fprintln(f, strings.Join(s.enc(rec), fieldSep))
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("agregar registro en %s: %w", s.path, werr)
	}
	return nil
}

// ForEach recorre los registros en orden de almacenamiento de forma perezosa.
// El recorrido se detiene cuando fn devuelve false. Cada llamada reabre el
// archivo, por lo que el recorrido es reiniciable.
func (s *Store[T]) ForEach(fn func(*T) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forEach(fn)
}

func (s *Store[T]) forEach(fn func(*T) bool) error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // almacén aún no creado: secuencia vacía
		}
		return fmt.Errorf("abrir almacén %s: %w", s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, err := s.dec(strings.Split(line, fieldSep))
		if err != nil {
			return fmt.Errorf("decodificar registro en %s: %w", s.path, err)
		}
		if !fn(rec) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("leer almacén %s: %w", s.path, err)
	}
	return nil
}

// ReadAll devuelve todos los registros en orden de almacenamiento.
func (s *Store[T]) ReadAll() ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*T
	err := s.forEach(func(rec *T) bool {
		out = append(out, rec)
		return true
	})
	return out, err
}

// RewriteAll reemplaza el contenido completo del almacén por la secuencia
// dada, en orden. Escribe a un temporal del mismo directorio y hace swap
// atómico con rename.
func (s *Store[T]) RewriteAll(recs []*T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", s.path, err)
	}
	w := bufio.NewWriter(tmp)
	for _, rec := range recs {
		if _, err := fmt.Fprintln(w, strings.Join(s.enc(rec), fieldSep)); err != nil {
			return s.discardTemp(tmp, err)
		}
	}
	return s.swapTemp(tmp, w)
}

// Replace parchea el primer registro que cumple match, re-codificándolo, y
// copia todas las demás líneas byte a byte al temporal antes del swap
// atómico. Devuelve ErrNoMatch si ningún registro coincide.
func (s *Store[T]) Replace(match func(*T) bool, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoMatch
		}
		return fmt.Errorf("abrir almacén %s: %w", s.path, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", s.path, err)
	}
	w := bufio.NewWriter(tmp)

	replaced := false
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if !replaced {
			existing, err := s.dec(strings.Split(line, fieldSep))
			if err != nil {
				return s.discardTemp(tmp, fmt.Errorf("decodificar registro en %s: %w", s.path, err))
			}
			if match(existing) {
				if _, err := fmt.Fprintln(w, strings.Join(s.enc(rec), fieldSep)); err != nil {
					return s.discardTemp(tmp, err)
				}
				replaced = true
				continue
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return s.discardTemp(tmp, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return s.discardTemp(tmp, fmt.Errorf("leer almacén %s: %w", s.path, err))
	}
	if !replaced {
		return s.discardTemp(tmp, ErrNoMatch)
	}
	return s.swapTemp(tmp, w)
}

// swapTemp vuelca el buffer, sincroniza y renombra el temporal sobre el
// almacén original.
func (s *Store[T]) swapTemp(tmp *os.File, w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return s.discardTemp(tmp, err)
	}
	if err := tmp.Sync(); err != nil {
		return s.discardTemp(tmp, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar temporal de %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("reemplazar almacén %s: %w", s.path, err)
	}
	return nil
}

func (s *Store[T]) discardTemp(tmp *os.File, err error) error {
	tmp.Close()
	os.Remove(tmp.Name())
	if errors.Is(err, ErrNoMatch) {
		return err
	}
	return fmt.Errorf("escribir temporal de %s: %w", s.path, err)
}
