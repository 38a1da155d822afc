// Package service orchestrates the report-understanding pipeline: it wires
// the extractor, knowledge base, and report classifier into the ParseReport
// and single-term interpretation operations exposed to callers.
package service

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/lab-insight-server/internal/domain"
	"github.com/lab-insight-server/internal/knowledge"
)

// DefaultInterpretationCacheSize bounds the in-memory interpretation cache.
const DefaultInterpretationCacheSize = 2048

// Interpreter resolves single (term, value, gender) lookups against the
// knowledge base, with an LRU cache in front. The knowledge base is
// immutable, so cached entries never go stale.
type Interpreter struct {
	kb     *knowledge.Base
	cache  *lru.Cache[string, *domain.InterpretedResult]
	logger *logrus.Logger
}

// NewInterpreter creates an interpreter with a bounded in-memory cache.
func NewInterpreter(kb *knowledge.Base, cacheSize int, logger *logrus.Logger) (*Interpreter, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultInterpretationCacheSize
	}
	cache, err := lru.New[string, *domain.InterpretedResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating interpretation cache: %w", err)
	}
	return &Interpreter{
		kb:     kb,
		cache:  cache,
		logger: logger,
	}, nil
}

// Interpret returns the interpreted record for a single term and value.
// An unknown canonical term surfaces domain.ErrUnknownTerm.
func (i *Interpreter) Interpret(term string, value float64, gender domain.Gender) (*domain.InterpretedResult, error) {
	return i.InterpretFor(term, value, gender, domain.AGE_GROUP_ADULT)
}

// InterpretFor is Interpret with an explicit age bracket.
func (i *Interpreter) InterpretFor(term string, value float64, gender domain.Gender, ageGroup domain.AgeGroup) (*domain.InterpretedResult, error) {
	key := fmt.Sprintf("%s|%s|%s|%g", term, gender, ageGroup, value)
	if cached, ok := i.cache.Get(key); ok {
		copied := *cached
		return &copied, nil
	}

	result, err := i.kb.InterpretationFor(term, value, gender, ageGroup)
	if err != nil {
		return nil, err
	}

	i.cache.Add(key, result)
	copied := *result
	return &copied, nil
}

// InterpretExtracted interprets one extracted result for a patient, carrying
// the extraction's unit and source line through to the interpreted record.
func (i *Interpreter) InterpretExtracted(extracted domain.ExtractedResult, patient domain.PatientInfo) (*domain.InterpretedResult, error) {
	result, err := i.InterpretFor(extracted.Term, extracted.Value, patient.Gender, patient.AgeGroup())
	if err != nil {
		return nil, err
	}
	if extracted.Unit != "" {
		result.Unit = extracted.Unit
	}
	result.SourceLine = extracted.SourceLine
	return result, nil
}

// CacheLen returns the current number of cached interpretations.
func (i *Interpreter) CacheLen() int {
	return i.cache.Len()
}
