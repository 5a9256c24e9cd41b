package classify

import (
	"github.com/dtnitsch/reqscope/models"
)

// LexicalFeaturizer produces only the in-repo feature block, with no TF-IDF
// base. It pairs with KeywordModel for deployments without trained models.
type LexicalFeaturizer struct{}

func (LexicalFeaturizer) Featurize(text string) ([]float64, error) {
	return AppendLexicalFeatures(nil, text), nil
}

// KeywordModel predicts FR/NFR from the keyword-count features alone. It
// reads the last feature block (see AppendLexicalFeatures), so it also works
// behind a featurizer that prepends TF-IDF terms.
type KeywordModel struct{}

func (KeywordModel) counts(features []float64) (fr, nfr float64) {
	if len(features) < lexicalFeatureCount {
		return 0, 0
	}
	block := features[len(features)-lexicalFeatureCount:]
	return block[0], block[1]
}

func (m KeywordModel) Predict(features []float64) (string, error) {
	fr, nfr := m.counts(features)
	// NFR terms are more specific than FR verbs, so a tie goes to NFR.
	if nfr > 0 && nfr >= fr {
		return string(models.TypeNonFunctional), nil
	}
	return string(models.TypeFunctional), nil
}

func (m KeywordModel) Proba(features []float64) (map[string]float64, error) {
	fr, nfr := m.counts(features)
	total := fr + nfr
	if total == 0 {
		return map[string]float64{
			string(models.TypeFunctional):    0.5,
			string(models.TypeNonFunctional): 0.5,
		}, nil
	}
	return map[string]float64{
		string(models.TypeFunctional):    fr / total,
		string(models.TypeNonFunctional): nfr / total,
	}, nil
}
