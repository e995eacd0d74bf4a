package classifier

import (
	"eeg-analyzer-go/pkg/models"
)

// nonSeizureClassification запись для сигнала без приступа
var nonSeizureClassification = models.SeizureClassification{
	IsSeizure:     false,
	Type:          models.PredictionNonSeizure,
	SpecificTypes: []string{},
	MotorTypes:    []string{},
	NonMotorTypes: []string{},
}

// seizureTypeTable единственная авторитетная таблица классификации ILAE 2017:
// по одной неизменяемой записи на каждый доминирующий диапазон.
// Alpha-доминантные приступы намеренно попадают в категорию Unknown-Onset —
// альфа-ритм нетипичен для иктальной активности.
var seizureTypeTable = map[models.Band]models.SeizureClassification{
	models.BandDelta: {
		IsSeizure:       true,
		Type:            "Generalized Tonic-Clonic",
		OnsetType:       strPtr("GENERALIZED ONSET"),
		AwarenessStatus: strPtr("IMPAIRED AWARENESS"),
		MotorSubtype:    strPtr("MOTOR"),
		MotorTypes: []string{
			"Generalized Tonic-Clonic Seizure",
			"Other Motor Seizure",
		},
		NonMotorTypes: []string{
			"Absence Seizure",
		},
		SpecificTypes: []string{
			"Generalized Tonic-Clonic",
			"Myoclonic",
			"Absence (Atypical)",
			"Atonic",
		},
		ILAEClassification: strPtr("Generalized-Onset"),
		Description:        "Slow-wave dominance (Delta) suggests bilateral, synchronous seizure activity affecting motor and consciousness systems characteristic of generalized onset seizures",
	},
	models.BandTheta: {
		IsSeizure:       true,
		Type:            "Complex Partial (Temporal Lobe)",
		OnsetType:       strPtr("FOCAL ONSET"),
		AwarenessStatus: strPtr("IMPAIRED AWARENESS"),
		MotorSubtype:    strPtr("NON-MOTOR"),
		MotorTypes: []string{
			"Focal to Bilateral Tonic-Clonic Seizure",
		},
		NonMotorTypes: []string{
			"Focal Impaired Awareness Seizure",
			"Complex Partial Seizure",
		},
		SpecificTypes: []string{
			"Complex Partial (Temporal Lobe)",
			"Focal Seizure with Secondary Generalization",
			"Focal Impaired Awareness",
		},
		ILAEClassification: strPtr("Focal-Onset, Impaired Awareness"),
		Description:        "Theta activity typical of temporal lobe origin with consciousness impairment. Focal onset with possible secondary generalization.",
		FocusLocation:      "Temporal Lobe / Mesial Temporal Structures",
	},
	models.BandAlpha: {
		IsSeizure:       true,
		Type:            "Atypical Seizure Pattern",
		OnsetType:       strPtr("UNKNOWN ONSET"),
		AwarenessStatus: strPtr("UNKNOWN"),
		MotorSubtype:    strPtr("UNKNOWN"),
		MotorTypes: []string{
			"Motor",
			"Tonic-Clonic",
			"Other Motor",
		},
		NonMotorTypes: []string{
			"Absence",
		},
		SpecificTypes: []string{
			"Atypical Seizure Pattern",
			"Unclassified",
			"Further Investigation Required",
		},
		ILAEClassification: strPtr("Unknown-Onset Seizure"),
		Description:        "Alpha-band dominance is atypical for seizures and requires additional investigation and confirmation with extended EEG monitoring",
	},
	models.BandBeta: {
		IsSeizure:       true,
		Type:            "Focal Aware Motor Seizure",
		OnsetType:       strPtr("FOCAL ONSET"),
		AwarenessStatus: strPtr("AWARE"),
		MotorSubtype:    strPtr("MOTOR"),
		MotorTypes: []string{
			"Focal Aware Motor Seizure",
			"Other Motor Seizure",
		},
		NonMotorTypes: []string{},
		SpecificTypes: []string{
			"Focal Aware Motor Seizure",
			"Simple Partial Motor",
			"Focal Motor Cortex Origin",
		},
		ILAEClassification: strPtr("Focal-Onset, Aware, Motor"),
		Description:        "Motor cortex involvement with preserved consciousness. Typical of focal motor seizures originating from motor/sensorimotor regions.",
		FocusLocation:      "Motor/Sensorimotor Cortex (Rolandic Region)",
	},
	models.BandGamma: {
		IsSeizure:       true,
		Type:            "Status Epilepticus",
		OnsetType:       strPtr("GENERALIZED ONSET (CRITICAL)"),
		AwarenessStatus: strPtr("IMPAIRED/LOST"),
		MotorSubtype:    strPtr("MOTOR (SEVERE)"),
		MotorTypes: []string{
			"Tonic-Clonic (Severe)",
			"Other Motor (Severe)",
		},
		NonMotorTypes: []string{},
		SpecificTypes: []string{
			"Status Epilepticus",
			"Severe Generalized Seizure",
			"Continuous Discharge",
		},
		ILAEClassification: strPtr("Generalized-Onset, Motor, CRITICAL"),
		Description:        "EMERGENCY: High-frequency gamma oscillations indicate severe, rapidly discharging epileptic activity with loss of consciousness and severe motor manifestation",
		Urgency:            "🚨 CRITICAL - IMMEDIATE MEDICAL INTERVENTION REQUIRED",
	},
}

// ClassifySeizureType возвращает классификацию типа приступа по доминирующему
// диапазону. Confidence принимается для совместимости контракта, но на выбор
// записи не влияет. Возвращается глубокая копия: вызывающий код может
// подменять поля, не затрагивая таблицу.
func ClassifySeizureType(isSeizure bool, band models.Band, confidence float64) models.SeizureClassification {
	_ = confidence

	if !isSeizure {
		return copyClassification(nonSeizureClassification)
	}

	entry, ok := seizureTypeTable[band]
	if !ok {
		// Неизвестный диапазон: детали классификации отсутствуют,
		// но флаг приступа сохраняется
		result := copyClassification(nonSeizureClassification)
		result.IsSeizure = isSeizure
		return result
	}
	result := copyClassification(entry)
	result.IsSeizure = true
	return result
}

// copyClassification создает независимую копию записи таблицы
func copyClassification(c models.SeizureClassification) models.SeizureClassification {
	out := c
	out.SpecificTypes = append([]string{}, c.SpecificTypes...)
	out.MotorTypes = append([]string{}, c.MotorTypes...)
	out.NonMotorTypes = append([]string{}, c.NonMotorTypes...)
	if c.OnsetType != nil {
		out.OnsetType = strPtr(*c.OnsetType)
	}
	if c.MotorSubtype != nil {
		out.MotorSubtype = strPtr(*c.MotorSubtype)
	}
	if c.AwarenessStatus != nil {
		out.AwarenessStatus = strPtr(*c.AwarenessStatus)
	}
	if c.ILAEClassification != nil {
		out.ILAEClassification = strPtr(*c.ILAEClassification)
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
