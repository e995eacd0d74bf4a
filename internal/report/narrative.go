package report

import (
	"eeg-analyzer-go/internal/signal"
	"eeg-analyzer-go/pkg/models"
)

// GenerateFindings формирует клинические наблюдения по результатам анализа.
// Порядок добавления фиксирован: специфика типа приступа, затем числовые
// оговорки, затем закрывающее утверждение.
func GenerateFindings(features signal.FeatureSet, isSeizure bool, band models.Band) []string {
	findings := []string{}

	if isSeizure {
		findings = append(findings, "Abnormal neurophysiological patterns detected in EEG signal")

		switch band {
		case models.BandDelta:
			findings = append(findings,
				"Slow-wave (Delta) dominance suggests generalized or focal seizure with secondary involvement",
				"Pattern consistent with tonic-clonic or absence seizure activity")
		case models.BandTheta:
			findings = append(findings,
				"Theta-dominant activity typical of temporal lobe or focal aware seizures",
				"Consistent with focal impaired awareness seizure patterns")
		case models.BandBeta:
			findings = append(findings,
				"Beta-range activity indicates motor cortex involvement",
				"Suggests tonic-clonic or focal motor seizure activity")
		case models.BandGamma:
			findings = append(findings,
				"High-frequency gamma oscillations indicate critical rapid neuronal firing",
				"Consistent with severe ictal discharge activity")
		}

		if features.Std > 400 {
			findings = append(findings, "Significantly elevated signal variability indicating intense rhythmic discharge")
		}
		findings = append(findings, "Immediate clinical correlation with patient symptoms essential")
	} else {
		findings = append(findings,
			"Signal within normal physiological parameters",
			"Background EEG activity appropriate for recorded state")

		switch band {
		case models.BandAlpha:
			findings = append(findings, "Alpha-dominant activity consistent with normal relaxed wakefulness")
		case models.BandBeta:
			findings = append(findings, "Beta activity appropriate for alert, cognitively engaged state")
		case models.BandTheta:
			findings = append(findings, "Theta activity may indicate drowsiness or light sleep - confirm with clinical context")
		}

		if features.Entropy > 0.6 {
			findings = append(findings, "Normal background variability and complexity preserved")
		}
		findings = append(findings, "No spike-wave complexes or abnormal discharges identified")
	}

	return findings
}

// GenerateRiskIndicators формирует индикаторы риска с учётом типа приступа
func GenerateRiskIndicators(features signal.FeatureSet, isSeizure bool, band models.Band) []string {
	indicators := []string{}

	if isSeizure {
		switch band {
		case models.BandDelta:
			indicators = append(indicators,
				"Risk of generalized tonic-clonic or secondarily generalized seizure",
				"Monitor for loss of consciousness or bilateral symptoms")
		case models.BandTheta:
			indicators = append(indicators,
				"Risk of focal impaired awareness (complex partial) seizure",
				"Monitor for automatisms and temporal lobe symptoms")
		case models.BandBeta:
			indicators = append(indicators,
				"Risk of focal motor seizure with motor manifestations",
				"Monitor for unilateral motor symptoms")
		case models.BandGamma:
			indicators = append(indicators,
				"HIGH RISK: Severe ictal activity with rapid discharge",
				"Critical priority - immediate intervention may be needed")
		}

		if features.MaxAbs > 1000 {
			indicators = append(indicators, "Extreme amplitude spikes detected - severe discharge activity")
		}
		if features.Std > 350 {
			indicators = append(indicators, "Critical variability level - active seizure dynamics")
		}
	} else {
		if features.Std > 250 {
			indicators = append(indicators, "Mildly elevated baseline activity - continue monitoring")
		}
		if band == models.BandDelta || band == models.BandTheta {
			indicators = append(indicators, "Lower frequency dominance - verify sleep state and context")
		}
		if features.Entropy < 0.3 {
			indicators = append(indicators, "Unusually organized activity - may indicate excessive drowsiness")
		}
	}

	return indicators
}

// GenerateRecommendations формирует рекомендации по классификации и качеству записи
func GenerateRecommendations(isSeizure bool, quality models.SignalQuality, band models.Band) []string {
	recommendations := []string{}

	if isSeizure {
		recommendations = append(recommendations, "URGENT: Immediate neurologist consultation required")

		switch band {
		case models.BandDelta, models.BandGamma:
			recommendations = append(recommendations,
				"Consider urgent continuous EEG monitoring",
				"Evaluate need for acute seizure medication or IV antiepileptic therapy")
		case models.BandTheta:
			recommendations = append(recommendations,
				"Schedule urgent neurology evaluation for focal seizure management",
				"Consider high-resolution imaging (MRI) if not recently done")
		}

		recommendations = append(recommendations,
			"Document detailed clinical semiology with EEG findings",
			"Assess current antiepileptic drug levels if applicable",
			"Consider seizure cluster or status epilepticus protocols if applicable")
	} else {
		recommendations = append(recommendations,
			"Continue routine clinical monitoring",
			"No acute intervention indicated at this time")

		switch quality {
		case models.QualityPoor:
			recommendations = append(recommendations,
				"Improve recording quality: verify electrode placement and contact",
				"Repeat EEG with optimized technical parameters if clinically indicated")
		case models.QualityExcellent:
			recommendations = append(recommendations,
				"High-quality recording suitable for confident clinical interpretation",
				"Archive for future reference and comparison")
		}

		recommendations = append(recommendations, "Standard follow-up schedule appropriate")
	}

	return recommendations
}
