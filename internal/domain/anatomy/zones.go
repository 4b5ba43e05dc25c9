package anatomy

import "strings"

func labels(en, fr, es string) map[Language]string {
	return map[Language]string{LanguageEnglish: en, LanguageFrench: fr, LanguageSpanish: es}
}

func related(kind RelationKind, ids ...string) []RelatedZone {
	out := make([]RelatedZone, 0, len(ids))
	for _, id := range ids {
		out = append(out, RelatedZone{ZoneID: id, Kind: kind})
	}
	return out
}

func concat[T any](parts ...[]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func group(id string, cat Category, parent string, l map[Language]string, children ...string) Zone {
	return Zone{ID: id, Labels: l, Category: cat, ParentID: parent, ChildIDs: children}
}

// DefaultZones returns the shipped anatomical table. The slice is freshly
// allocated on every call.
func DefaultZones() []Zone {
	return concat(headZones(), neckZones(), chestZones(), abdomenZones(), pelvisZones(), backZones(),
		limbGroups(), upperLimb("LEFT"), upperLimb("RIGHT"), lowerLimb("LEFT"), lowerLimb("RIGHT"))
}

func headZones() []Zone {
	neuro := []System{SystemNeurological}
	return []Zone{
		group("HEAD", CategoryHead, "", labels("Head", "Tête", "Cabeza"),
			"FOREHEAD", "LEFT_TEMPORAL", "RIGHT_TEMPORAL", "VERTEX", "OCCIPITAL",
			"LEFT_EYE", "RIGHT_EYE", "LEFT_EAR", "RIGHT_EAR", "JAW"),
		{
			ID: "FOREHEAD", Labels: labels("Forehead", "Front", "Frente"),
			Category: CategoryHead, Systems: []System{SystemNeurological, SystemENT}, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"frontal region", "brow"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Tension-type headache", "Frontal sinusitis", "Migraine"},
				RedFlags:        []RedFlag{FlagSubarachnoid, FlagMeningitis},
				DiagnosticCodes: []string{"R51.9", "J01.10", "G44.2"},
				RelatedZones:    concat(related(RelationAdjacent, "LEFT_TEMPORAL", "RIGHT_TEMPORAL", "LEFT_EYE", "RIGHT_EYE")),
				Priority:        5, IsCommon: true,
			},
		},
		{
			ID: "LEFT_TEMPORAL", Labels: labels("Left temple", "Tempe gauche", "Sien izquierda"),
			Category: CategoryHead, Systems: concat(neuro, []System{SystemVascular}), ParentID: "HEAD", Terminal: true,
			Aliases: []string{"left temple"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Migraine", "Giant cell arteritis", "Temporomandibular disorder"},
				RedFlags:        []RedFlag{FlagGiantCellArteritis, FlagSubarachnoid},
				DiagnosticCodes: []string{"G43.909", "M31.6"},
				RelatedZones:    concat(related(RelationAdjacent, "FOREHEAD", "LEFT_EYE"), related(RelationReferred, "JAW")),
				Priority:        6, IsCommon: true,
			},
		},
		{
			ID: "RIGHT_TEMPORAL", Labels: labels("Right temple", "Tempe droite", "Sien derecha"),
			Category: CategoryHead, Systems: concat(neuro, []System{SystemVascular}), ParentID: "HEAD", Terminal: true,
			Aliases: []string{"right temple"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Migraine", "Giant cell arteritis", "Temporomandibular disorder"},
				RedFlags:        []RedFlag{FlagGiantCellArteritis, FlagSubarachnoid},
				DiagnosticCodes: []string{"G43.909", "M31.6"},
				RelatedZones:    concat(related(RelationAdjacent, "FOREHEAD", "RIGHT_EYE"), related(RelationReferred, "JAW")),
				Priority:        6, IsCommon: true,
			},
		},
		{
			ID: "VERTEX", Labels: labels("Top of head", "Sommet du crâne", "Coronilla"),
			Category: CategoryHead, Systems: neuro, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"crown", "top of head"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Tension-type headache", "Raised intracranial pressure"},
				RedFlags:        []RedFlag{FlagSubarachnoid},
				DiagnosticCodes: []string{"G44.2", "G93.2"},
				RelatedZones:    related(RelationAdjacent, "FOREHEAD", "OCCIPITAL"),
				Priority:        6,
			},
		},
		{
			ID: "OCCIPITAL", Labels: labels("Back of head", "Région occipitale", "Región occipital"),
			Category: CategoryHead, Systems: neuro, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"occiput", "back of head"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Occipital neuralgia", "Cervicogenic headache", "Subarachnoid haemorrhage"},
				RedFlags:        []RedFlag{FlagSubarachnoid, FlagMeningitis},
				DiagnosticCodes: []string{"M54.81", "G44.86", "I60.9"},
				RelatedZones:    concat(related(RelationAdjacent, "VERTEX"), related(RelationReferred, "POSTERIOR_NECK")),
				Priority:        7, IsCommon: true,
			},
		},
		{
			ID: "LEFT_EYE", Labels: labels("Left eye", "Œil gauche", "Ojo izquierdo"),
			Category: CategoryHead, Systems: []System{SystemOphthalmic, SystemNeurological}, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"left orbit"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Conjunctivitis", "Acute angle-closure glaucoma", "Cluster headache"},
				RedFlags:        []RedFlag{FlagAngleClosure, FlagVisionLoss},
				DiagnosticCodes: []string{"H10.9", "H40.219", "G44.009"},
				RelatedZones:    related(RelationAdjacent, "FOREHEAD", "LEFT_TEMPORAL"),
				Priority:        6,
			},
		},
		{
			ID: "RIGHT_EYE", Labels: labels("Right eye", "Œil droit", "Ojo derecho"),
			Category: CategoryHead, Systems: []System{SystemOphthalmic, SystemNeurological}, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"right orbit"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Conjunctivitis", "Acute angle-closure glaucoma", "Cluster headache"},
				RedFlags:        []RedFlag{FlagAngleClosure, FlagVisionLoss},
				DiagnosticCodes: []string{"H10.9", "H40.219", "G44.009"},
				RelatedZones:    related(RelationAdjacent, "FOREHEAD", "RIGHT_TEMPORAL"),
				Priority:        6,
			},
		},
		{
			ID: "LEFT_EAR", Labels: labels("Left ear", "Oreille gauche", "Oído izquierdo"),
			Category: CategoryHead, Systems: []System{SystemENT}, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"left ear"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Otitis media", "Otitis externa", "Referred dental pain"},
				RedFlags:        []RedFlag{FlagMastoiditis},
				DiagnosticCodes: []string{"H66.90", "H60.90", "H92.09"},
				RelatedZones:    related(RelationReferred, "JAW"),
				Priority:        3, IsCommon: true,
			},
		},
		{
			ID: "RIGHT_EAR", Labels: labels("Right ear", "Oreille droite", "Oído derecho"),
			Category: CategoryHead, Systems: []System{SystemENT}, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"right ear"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Otitis media", "Otitis externa", "Referred dental pain"},
				RedFlags:        []RedFlag{FlagMastoiditis},
				DiagnosticCodes: []string{"H66.90", "H60.90", "H92.09"},
				RelatedZones:    related(RelationReferred, "JAW"),
				Priority:        3, IsCommon: true,
			},
		},
		{
			ID: "JAW", Labels: labels("Jaw", "Mâchoire", "Mandíbula"),
			Category: CategoryHead, Systems: []System{SystemMusculoskeletal, SystemCardiovascular}, ParentID: "HEAD", Terminal: true,
			Aliases: []string{"mandible", "temporomandibular joint"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Temporomandibular disorder", "Dental abscess", "Referred cardiac pain"},
				RedFlags:        []RedFlag{FlagAcuteCoronary, FlagGiantCellArteritis},
				DiagnosticCodes: []string{"M26.60", "K04.7", "I20.9"},
				RelatedZones:    concat(related(RelationReferred, "LEFT_PRECORDIAL"), related(RelationAdjacent, "LEFT_EAR", "RIGHT_EAR")),
				Priority:        5,
			},
		},
	}
}

func neckZones() []Zone {
	return []Zone{
		group("NECK", CategoryNeck, "", labels("Neck", "Cou", "Cuello"), "ANTERIOR_NECK", "POSTERIOR_NECK"),
		{
			ID: "ANTERIOR_NECK", Labels: labels("Front of neck / throat", "Gorge", "Garganta"),
			Category: CategoryNeck, Systems: []System{SystemENT, SystemRespiratory}, ParentID: "NECK", Terminal: true,
			Aliases: []string{"throat", "anterior cervical region"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Pharyngitis", "Tonsillitis", "Thyroiditis", "Peritonsillar abscess"},
				RedFlags:        []RedFlag{FlagAirway},
				DiagnosticCodes: []string{"J02.9", "J03.90", "E06.9", "J36"},
				RelatedZones:    related(RelationAdjacent, "POSTERIOR_NECK", "JAW"),
				Priority:        7, IsCommon: true,
			},
		},
		{
			ID: "POSTERIOR_NECK", Labels: labels("Back of neck", "Nuque", "Nuca"),
			Category: CategoryNeck, Systems: []System{SystemMusculoskeletal, SystemNeurological}, ParentID: "NECK", Terminal: true,
			Aliases: []string{"cervical spine", "nape"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Mechanical neck pain", "Cervical radiculopathy", "Meningism"},
				RedFlags:        []RedFlag{FlagMeningitis, FlagCervicalCord},
				DiagnosticCodes: []string{"M54.2", "M54.12"},
				RelatedZones:    concat(related(RelationRadiation, "LEFT_ARM", "RIGHT_ARM"), related(RelationReferred, "OCCIPITAL")),
				Priority:        5, IsCommon: true,
			},
		},
	}
}

func chestZones() []Zone {
	return []Zone{
		group("CHEST", CategoryChest, "", labels("Chest", "Thorax", "Tórax"),
			"LEFT_PRECORDIAL", "RETROSTERNAL", "RIGHT_CHEST", "LEFT_LATERAL_CHEST"),
		{
			ID: "LEFT_PRECORDIAL", Labels: labels("Left chest (over the heart)", "Région précordiale gauche", "Región precordial izquierda"),
			Category: CategoryChest, Systems: []System{SystemCardiovascular, SystemMusculoskeletal}, ParentID: "CHEST", Terminal: true,
			Aliases: []string{"precordium", "heart area", "left chest"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Acute coronary syndrome", "Stable angina", "Pericarditis", "Costochondritis"},
				RedFlags:        []RedFlag{FlagAcuteCoronary, FlagPericarditis},
				DiagnosticCodes: []string{"R07.2", "I21.9", "I20.9", "I30.9", "M94.0"},
				RelatedZones: concat(
					related(RelationRadiation, "LEFT_ARM", "LEFT_SHOULDER", "JAW"),
					related(RelationAdjacent, "RETROSTERNAL", "LEFT_LATERAL_CHEST", "EPIGASTRIUM"),
				),
				Priority: 10, IsCommon: true,
			},
		},
		{
			ID: "RETROSTERNAL", Labels: labels("Centre of chest", "Région rétrosternale", "Región retroesternal"),
			Category: CategoryChest, Systems: []System{SystemCardiovascular, SystemGastrointestinal, SystemRespiratory}, ParentID: "CHEST", Terminal: true,
			Aliases: []string{"sternum", "central chest", "behind the breastbone"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Acute coronary syndrome", "Aortic dissection", "Gastro-oesophageal reflux", "Oesophageal spasm"},
				RedFlags:        []RedFlag{FlagAcuteCoronary, FlagAorticDissection, FlagPericarditis},
				DiagnosticCodes: []string{"R07.89", "I71.00", "K21.9"},
				RelatedZones: concat(
					related(RelationRadiation, "THORACIC_SPINE", "LEFT_SCAPULAR", "JAW"),
					related(RelationAdjacent, "LEFT_PRECORDIAL", "RIGHT_CHEST", "EPIGASTRIUM"),
				),
				Priority: 9, IsCommon: true,
			},
		},
		{
			ID: "RIGHT_CHEST", Labels: labels("Right chest", "Hémithorax droit", "Hemitórax derecho"),
			Category: CategoryChest, Systems: []System{SystemRespiratory, SystemMusculoskeletal}, ParentID: "CHEST", Terminal: true,
			Aliases: []string{"right hemithorax"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Pneumonia", "Pleurisy", "Pulmonary embolism", "Rib injury"},
				RedFlags:        []RedFlag{FlagPulmonaryEmbolism, FlagPneumothorax},
				DiagnosticCodes: []string{"J18.9", "R09.1", "I26.99", "S22.39"},
				RelatedZones:    concat(related(RelationAdjacent, "RETROSTERNAL", "RIGHT_HYPOCHONDRIUM"), related(RelationReferred, "RIGHT_SHOULDER")),
				Priority:        7,
			},
		},
		{
			ID: "LEFT_LATERAL_CHEST", Labels: labels("Left side of chest", "Côté gauche du thorax", "Costado izquierdo del tórax"),
			Category: CategoryChest, Systems: []System{SystemRespiratory, SystemMusculoskeletal, SystemDermatological}, ParentID: "CHEST", Terminal: true,
			Aliases: []string{"left hemithorax", "left ribs"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Pleurisy", "Rib fracture", "Herpes zoster", "Pneumothorax"},
				RedFlags:        []RedFlag{FlagPulmonaryEmbolism, FlagPneumothorax},
				DiagnosticCodes: []string{"R09.1", "S22.32", "B02.9", "J93.9"},
				RelatedZones:    concat(related(RelationDermatomal, "LEFT_SCAPULAR", "THORACIC_SPINE"), related(RelationAdjacent, "LEFT_PRECORDIAL")),
				Priority:        6,
			},
		},
	}
}

func abdomenZones() []Zone {
	gi := []System{SystemGastrointestinal}
	return []Zone{
		group("ABDOMEN", CategoryAbdomen, "", labels("Abdomen", "Abdomen", "Abdomen"),
			"RIGHT_HYPOCHONDRIUM", "EPIGASTRIUM", "LEFT_HYPOCHONDRIUM",
			"RIGHT_LUMBAR", "UMBILICAL", "LEFT_LUMBAR",
			"RIGHT_ILIAC", "HYPOGASTRIUM", "LEFT_ILIAC"),
		{
			ID: "RIGHT_HYPOCHONDRIUM", Labels: labels("Right upper abdomen", "Hypochondre droit", "Hipocondrio derecho"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemHepatobiliary}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"right upper quadrant", "ruq", "liver area"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Biliary colic", "Acute cholecystitis", "Hepatitis", "Cholangitis"},
				RedFlags:        []RedFlag{FlagCholecystitis},
				DiagnosticCodes: []string{"K80.20", "K81.0", "K75.9", "K83.09"},
				RelatedZones:    concat(related(RelationRadiation, "RIGHT_SCAPULAR", "RIGHT_SHOULDER"), related(RelationAdjacent, "EPIGASTRIUM", "RIGHT_LUMBAR")),
				Priority:        6, IsCommon: true,
			},
		},
		{
			ID: "EPIGASTRIUM", Labels: labels("Upper middle abdomen", "Épigastre", "Epigastrio"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemCardiovascular}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"epigastric region", "pit of the stomach"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Peptic ulcer disease", "Gastritis", "Acute pancreatitis", "Inferior myocardial infarction"},
				RedFlags:        []RedFlag{FlagPancreatitis, FlagPerforation, FlagAcuteCoronary},
				DiagnosticCodes: []string{"K27.9", "K29.70", "K85.90", "R10.13"},
				RelatedZones:    concat(related(RelationRadiation, "THORACIC_SPINE"), related(RelationAdjacent, "RETROSTERNAL", "UMBILICAL")),
				Priority:        7, IsCommon: true,
			},
		},
		{
			ID: "LEFT_HYPOCHONDRIUM", Labels: labels("Left upper abdomen", "Hypochondre gauche", "Hipocondrio izquierdo"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemVascular}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"left upper quadrant", "luq", "spleen area"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Splenic injury", "Gastritis", "Splenic infarct"},
				RedFlags:        []RedFlag{FlagSplenicRupture},
				DiagnosticCodes: []string{"S36.00", "K29.70", "D73.5"},
				RelatedZones:    concat(related(RelationReferred, "LEFT_SHOULDER"), related(RelationAdjacent, "EPIGASTRIUM", "LEFT_LUMBAR")),
				Priority:        6,
			},
		},
		{
			ID: "RIGHT_LUMBAR", Labels: labels("Right flank", "Flanc droit", "Flanco derecho"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemGenitourinary}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"right flank"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Renal colic", "Pyelonephritis", "Ascending colon pathology"},
				RedFlags:        []RedFlag{FlagRenalColic, FlagPyelonephritis},
				DiagnosticCodes: []string{"N23", "N10", "R10.31"},
				RelatedZones:    concat(related(RelationRadiation, "RIGHT_GROIN"), related(RelationAdjacent, "RIGHT_LOIN", "RIGHT_ILIAC")),
				Priority:        6,
			},
		},
		{
			ID: "UMBILICAL", Labels: labels("Around the navel", "Région ombilicale", "Región umbilical"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemVascular}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"periumbilical", "navel", "belly button"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Early appendicitis", "Gastroenteritis", "Small bowel obstruction", "Abdominal aortic aneurysm"},
				RedFlags:        []RedFlag{FlagAorticAneurysm, FlagBowelObstruction},
				DiagnosticCodes: []string{"R10.33", "A09", "K56.609", "I71.3"},
				RelatedZones:    concat(related(RelationReferred, "RIGHT_ILIAC"), related(RelationAdjacent, "EPIGASTRIUM", "HYPOGASTRIUM")),
				Priority:        7, IsCommon: true,
			},
		},
		{
			ID: "LEFT_LUMBAR", Labels: labels("Left flank", "Flanc gauche", "Flanco izquierdo"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemGenitourinary}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"left flank"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Renal colic", "Pyelonephritis", "Descending colon pathology"},
				RedFlags:        []RedFlag{FlagRenalColic, FlagPyelonephritis},
				DiagnosticCodes: []string{"N23", "N10", "R10.32"},
				RelatedZones:    concat(related(RelationRadiation, "LEFT_GROIN"), related(RelationAdjacent, "LEFT_LOIN", "LEFT_ILIAC")),
				Priority:        6,
			},
		},
		{
			ID: "RIGHT_ILIAC", Labels: labels("Right lower abdomen", "Fosse iliaque droite", "Fosa ilíaca derecha"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemReproductive}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"right lower quadrant", "rlq", "mcburney point"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Acute appendicitis", "Mesenteric adenitis", "Ovarian cyst", "Ectopic pregnancy", "Crohn's disease"},
				RedFlags:        []RedFlag{FlagAppendicitis, FlagEctopic, FlagOvarianTorsion},
				DiagnosticCodes: []string{"K35.80", "I88.0", "N83.20", "O00.90", "R10.31"},
				RelatedZones:    concat(related(RelationAdjacent, "UMBILICAL", "HYPOGASTRIUM", "RIGHT_GROIN")),
				Priority:        8, IsCommon: true,
			},
		},
		{
			ID: "HYPOGASTRIUM", Labels: labels("Lower middle abdomen", "Hypogastre", "Hipogastrio"),
			Category: CategoryAbdomen, Systems: []System{SystemGenitourinary, SystemReproductive, SystemGastrointestinal}, ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"suprapubic", "bladder area"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Cystitis", "Urinary retention", "Pelvic inflammatory disease", "Ectopic pregnancy"},
				RedFlags:        []RedFlag{FlagUrinaryRetention, FlagEctopic},
				DiagnosticCodes: []string{"N30.90", "R33.9", "N73.9", "R10.2"},
				RelatedZones:    related(RelationAdjacent, "UMBILICAL", "RIGHT_ILIAC", "LEFT_ILIAC", "PERINEUM"),
				Priority:        6, IsCommon: true,
			},
		},
		{
			ID: "LEFT_ILIAC", Labels: labels("Left lower abdomen", "Fosse iliaque gauche", "Fosa ilíaca izquierda"),
			Category: CategoryAbdomen, Systems: concat(gi, []System{SystemReproductive}), ParentID: "ABDOMEN", Terminal: true,
			Aliases: []string{"left lower quadrant", "llq"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Diverticulitis", "Constipation", "Ovarian cyst", "Ectopic pregnancy"},
				RedFlags:        []RedFlag{FlagDiverticulitis, FlagEctopic, FlagOvarianTorsion},
				DiagnosticCodes: []string{"K57.32", "K59.00", "N83.20", "R10.32"},
				RelatedZones:    related(RelationAdjacent, "UMBILICAL", "HYPOGASTRIUM", "LEFT_GROIN"),
				Priority:        6, IsCommon: true,
			},
		},
	}
}

func pelvisZones() []Zone {
	return []Zone{
		group("PELVIS", CategoryPelvis, "", labels("Pelvis and groin", "Bassin et aine", "Pelvis e ingle"),
			"LEFT_GROIN", "RIGHT_GROIN", "PERINEUM"),
		{
			ID: "LEFT_GROIN", Labels: labels("Left groin", "Aine gauche", "Ingle izquierda"),
			Category: CategoryPelvis, Systems: []System{SystemGenitourinary, SystemMusculoskeletal, SystemReproductive}, ParentID: "PELVIS", Terminal: true,
			Aliases: []string{"left inguinal region"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Inguinal hernia", "Adductor strain", "Testicular torsion", "Referred renal colic"},
				RedFlags:        []RedFlag{FlagTesticularTorsion, FlagIncarceratedHernia},
				DiagnosticCodes: []string{"K40.90", "S76.219", "N44.00"},
				RelatedZones:    concat(related(RelationAdjacent, "LEFT_ILIAC", "LEFT_HIP"), related(RelationReferred, "LEFT_LOIN")),
				Priority:        7,
			},
		},
		{
			ID: "RIGHT_GROIN", Labels: labels("Right groin", "Aine droite", "Ingle derecha"),
			Category: CategoryPelvis, Systems: []System{SystemGenitourinary, SystemMusculoskeletal, SystemReproductive}, ParentID: "PELVIS", Terminal: true,
			Aliases: []string{"right inguinal region"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Inguinal hernia", "Adductor strain", "Testicular torsion", "Referred renal colic"},
				RedFlags:        []RedFlag{FlagTesticularTorsion, FlagIncarceratedHernia},
				DiagnosticCodes: []string{"K40.90", "S76.219", "N44.00"},
				RelatedZones:    concat(related(RelationAdjacent, "RIGHT_ILIAC", "RIGHT_HIP"), related(RelationReferred, "RIGHT_LOIN")),
				Priority:        7,
			},
		},
		{
			ID: "PERINEUM", Labels: labels("Perineum", "Périnée", "Periné"),
			Category: CategoryPelvis, Systems: []System{SystemGenitourinary, SystemReproductive, SystemDermatological}, ParentID: "PELVIS", Terminal: true,
			Aliases: []string{"perineal region", "saddle area"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Prostatitis", "Perianal abscess", "Fournier gangrene"},
				RedFlags:        []RedFlag{FlagFournier, FlagCaudaEquina},
				DiagnosticCodes: []string{"N41.9", "K61.0", "N49.3"},
				RelatedZones:    concat(related(RelationAdjacent, "HYPOGASTRIUM"), related(RelationDermatomal, "SACRUM")),
				Priority:        6,
			},
		},
	}
}

func backZones() []Zone {
	msk := []System{SystemMusculoskeletal}
	return []Zone{
		group("BACK", CategoryBack, "", labels("Back", "Dos", "Espalda"), "UPPER_BACK", "LOWER_BACK"),
		group("UPPER_BACK", CategoryBack, "BACK", labels("Upper back", "Haut du dos", "Parte superior de la espalda"),
			"THORACIC_SPINE", "LEFT_SCAPULAR", "RIGHT_SCAPULAR"),
		group("LOWER_BACK", CategoryBack, "BACK", labels("Lower back", "Bas du dos", "Parte baja de la espalda"),
			"LUMBAR_SPINE", "LEFT_LOIN", "RIGHT_LOIN", "SACRUM"),
		{
			ID: "THORACIC_SPINE", Labels: labels("Middle of upper back", "Rachis thoracique", "Columna torácica"),
			Category: CategoryBack, Systems: concat(msk, []System{SystemNeurological, SystemVascular}), ParentID: "UPPER_BACK", Terminal: true,
			Aliases: []string{"interscapular region", "mid back", "dorsal spine"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Mechanical thoracic pain", "Vertebral fracture", "Aortic dissection", "Herpes zoster"},
				RedFlags:        []RedFlag{FlagAorticDissection, FlagVertebralFracture, FlagSpinalMalignancy},
				DiagnosticCodes: []string{"M54.6", "S22.009", "I71.01"},
				RelatedZones:    concat(related(RelationAdjacent, "LEFT_SCAPULAR", "RIGHT_SCAPULAR"), related(RelationDermatomal, "LEFT_LATERAL_CHEST")),
				Priority:        6,
			},
		},
		{
			ID: "LEFT_SCAPULAR", Labels: labels("Left shoulder blade", "Omoplate gauche", "Omóplato izquierdo"),
			Category: CategoryBack, Systems: concat(msk, []System{SystemDermatological}), ParentID: "UPPER_BACK", Terminal: true,
			Aliases: []string{"left shoulder blade"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Muscular strain", "Herpes zoster", "Referred cardiac or aortic pain"},
				RedFlags:        []RedFlag{FlagAorticDissection},
				DiagnosticCodes: []string{"M54.6", "B02.9"},
				RelatedZones:    concat(related(RelationAdjacent, "THORACIC_SPINE", "LEFT_SHOULDER"), related(RelationDermatomal, "LEFT_LATERAL_CHEST")),
				Priority:        4, IsCommon: true,
			},
		},
		{
			ID: "RIGHT_SCAPULAR", Labels: labels("Right shoulder blade", "Omoplate droite", "Omóplato derecho"),
			Category: CategoryBack, Systems: concat(msk, []System{SystemHepatobiliary}), ParentID: "UPPER_BACK", Terminal: true,
			Aliases: []string{"right shoulder blade"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Muscular strain", "Referred biliary pain"},
				RedFlags:        []RedFlag{FlagCholecystitis},
				DiagnosticCodes: []string{"M54.6", "K80.20"},
				RelatedZones:    concat(related(RelationAdjacent, "THORACIC_SPINE", "RIGHT_SHOULDER"), related(RelationReferred, "RIGHT_HYPOCHONDRIUM")),
				Priority:        4, IsCommon: true,
			},
		},
		{
			ID: "LUMBAR_SPINE", Labels: labels("Lower back (spine)", "Rachis lombaire", "Columna lumbar"),
			Category: CategoryBack, Systems: concat(msk, []System{SystemNeurological}), ParentID: "LOWER_BACK", Terminal: true,
			Aliases: []string{"lumbar region", "low back"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Mechanical low back pain", "Lumbar disc herniation", "Sciatica", "Spinal stenosis"},
				RedFlags:        []RedFlag{FlagCaudaEquina, FlagSpinalInfection, FlagSpinalMalignancy, FlagVertebralFracture},
				DiagnosticCodes: []string{"M54.50", "M51.26", "M54.30", "M48.061"},
				RelatedZones: concat(
					related(RelationRadiation, "LEFT_THIGH", "RIGHT_THIGH", "LEFT_CALF", "RIGHT_CALF", "LEFT_FOOT", "RIGHT_FOOT"),
					related(RelationAdjacent, "SACRUM", "LEFT_LOIN", "RIGHT_LOIN"),
				),
				Priority: 5, IsCommon: true,
			},
		},
		{
			ID: "LEFT_LOIN", Labels: labels("Left loin", "Fosse lombaire gauche", "Fosa renal izquierda"),
			Category: CategoryBack, Systems: []System{SystemGenitourinary, SystemMusculoskeletal}, ParentID: "LOWER_BACK", Terminal: true,
			Aliases: []string{"left costovertebral angle", "left kidney area"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Renal colic", "Pyelonephritis", "Muscular strain"},
				RedFlags:        []RedFlag{FlagRenalColic, FlagPyelonephritis, FlagAorticAneurysm},
				DiagnosticCodes: []string{"N23", "N10", "M54.50"},
				RelatedZones:    concat(related(RelationRadiation, "LEFT_GROIN", "LEFT_LUMBAR", "HYPOGASTRIUM"), related(RelationAdjacent, "LUMBAR_SPINE")),
				Priority:        6,
			},
		},
		{
			ID: "RIGHT_LOIN", Labels: labels("Right loin", "Fosse lombaire droite", "Fosa renal derecha"),
			Category: CategoryBack, Systems: []System{SystemGenitourinary, SystemMusculoskeletal}, ParentID: "LOWER_BACK", Terminal: true,
			Aliases: []string{"right costovertebral angle", "right kidney area"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Renal colic", "Pyelonephritis", "Muscular strain"},
				RedFlags:        []RedFlag{FlagRenalColic, FlagPyelonephritis},
				DiagnosticCodes: []string{"N23", "N10", "M54.50"},
				RelatedZones:    concat(related(RelationRadiation, "RIGHT_GROIN", "RIGHT_LUMBAR", "HYPOGASTRIUM"), related(RelationAdjacent, "LUMBAR_SPINE")),
				Priority:        6,
			},
		},
		{
			ID: "SACRUM", Labels: labels("Sacrum / tailbone", "Sacrum", "Sacro"),
			Category: CategoryBack, Systems: concat(msk, []System{SystemNeurological}), ParentID: "LOWER_BACK", Terminal: true,
			Aliases: []string{"tailbone", "coccyx", "sacral region"},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Sacroiliac joint dysfunction", "Coccydynia", "Pilonidal abscess"},
				RedFlags:        []RedFlag{FlagCaudaEquina},
				DiagnosticCodes: []string{"M53.3", "M53.2X8", "L05.01"},
				RelatedZones:    concat(related(RelationAdjacent, "LUMBAR_SPINE"), related(RelationDermatomal, "PERINEUM")),
				Priority:        5,
			},
		},
	}
}

func limbGroups() []Zone {
	return []Zone{
		group("UPPER_LIMBS", CategoryUpperLimb, "", labels("Arms", "Membres supérieurs", "Miembros superiores"),
			"LEFT_UPPER_LIMB", "RIGHT_UPPER_LIMB"),
		group("LEFT_UPPER_LIMB", CategoryUpperLimb, "UPPER_LIMBS", labels("Left arm", "Membre supérieur gauche", "Miembro superior izquierdo"),
			"LEFT_SHOULDER", "LEFT_ARM", "LEFT_ELBOW", "LEFT_FOREARM", "LEFT_HAND"),
		group("RIGHT_UPPER_LIMB", CategoryUpperLimb, "UPPER_LIMBS", labels("Right arm", "Membre supérieur droit", "Miembro superior derecho"),
			"RIGHT_SHOULDER", "RIGHT_ARM", "RIGHT_ELBOW", "RIGHT_FOREARM", "RIGHT_HAND"),
		group("LOWER_LIMBS", CategoryLowerLimb, "", labels("Legs", "Membres inférieurs", "Miembros inferiores"),
			"LEFT_LOWER_LIMB", "RIGHT_LOWER_LIMB"),
		group("LEFT_LOWER_LIMB", CategoryLowerLimb, "LOWER_LIMBS", labels("Left leg", "Membre inférieur gauche", "Miembro inferior izquierdo"),
			"LEFT_HIP", "LEFT_THIGH", "LEFT_KNEE", "LEFT_CALF", "LEFT_FOOT"),
		group("RIGHT_LOWER_LIMB", CategoryLowerLimb, "LOWER_LIMBS", labels("Right leg", "Membre inférieur droit", "Miembro inferior derecho"),
			"RIGHT_HIP", "RIGHT_THIGH", "RIGHT_KNEE", "RIGHT_CALF", "RIGHT_FOOT"),
	}
}

type sideWords struct {
	id, en   string
	frM, frF string
	esM, esF string
	scapular string
	groin    string
}

func side(s string) sideWords {
	if s == "LEFT" {
		return sideWords{id: "LEFT", en: "Left", frM: "gauche", frF: "gauche", esM: "izquierdo", esF: "izquierda",
			scapular: "LEFT_SCAPULAR", groin: "LEFT_GROIN"}
	}
	return sideWords{id: "RIGHT", en: "Right", frM: "droit", frF: "droite", esM: "derecho", esF: "derecha",
		scapular: "RIGHT_SCAPULAR", groin: "RIGHT_GROIN"}
}

func upperLimb(s string) []Zone {
	w := side(s)
	p := w.id + "_"
	lower := func(x string) string { return strings.ToLower(w.en) + " " + x }
	parent := w.id + "_UPPER_LIMB"
	msk := []System{SystemMusculoskeletal}

	shoulder := Zone{
		ID: p + "SHOULDER", Labels: labels(w.en+" shoulder", "Épaule "+w.frF, "Hombro "+w.esM),
		Category: CategoryUpperLimb, Systems: msk, ParentID: parent, Terminal: true,
		Aliases: []string{lower("shoulder"), lower("glenohumeral joint")},
		Clinical: &ClinicalContext{
			Diagnoses:       []string{"Rotator cuff tendinopathy", "Frozen shoulder", "Dislocation"},
			RedFlags:        []RedFlag{FlagFracture, FlagSepticArthritis},
			DiagnosticCodes: []string{"M75.100", "M75.00", "S43.006"},
			RelatedZones:    concat(related(RelationAdjacent, p+"ARM", w.scapular)),
			Priority:        4, IsCommon: true,
		},
	}
	arm := Zone{
		ID: p + "ARM", Labels: labels(w.en+" upper arm", "Bras "+w.frM, "Brazo "+w.esM),
		Category: CategoryUpperLimb, Systems: msk, ParentID: parent, Terminal: true,
		Aliases: []string{lower("upper arm"), lower("biceps")},
		Clinical: &ClinicalContext{
			Diagnoses:       []string{"Muscle strain", "Humeral fracture", "Cervical radiculopathy"},
			RedFlags:        []RedFlag{FlagFracture, FlagDeepVeinThrombosis},
			DiagnosticCodes: []string{"S46.919", "S42.309", "M54.12"},
			RelatedZones:    concat(related(RelationAdjacent, p+"SHOULDER", p+"ELBOW"), related(RelationDermatomal, p+"FOREARM")),
			Priority:        3,
		},
	}
	if w.id == "LEFT" {
		shoulder.Clinical.Priority = 5
		shoulder.Clinical.Diagnoses = append(shoulder.Clinical.Diagnoses, "Referred splenic pain (Kehr sign)", "Referred cardiac pain")
		shoulder.Clinical.RelatedZones = append(shoulder.Clinical.RelatedZones, related(RelationReferred, "LEFT_HYPOCHONDRIUM", "LEFT_PRECORDIAL")...)
		arm.Systems = []System{SystemMusculoskeletal, SystemCardiovascular}
		arm.Clinical.Priority = 6
		arm.Clinical.Diagnoses = append([]string{"Referred cardiac pain"}, arm.Clinical.Diagnoses...)
		arm.Clinical.RedFlags = append([]RedFlag{FlagAcuteCoronary}, arm.Clinical.RedFlags...)
		arm.Clinical.DiagnosticCodes = append(arm.Clinical.DiagnosticCodes, "I20.9")
		arm.Clinical.RelatedZones = append(arm.Clinical.RelatedZones, related(RelationReferred, "LEFT_PRECORDIAL")...)
	} else {
		shoulder.Clinical.Diagnoses = append(shoulder.Clinical.Diagnoses, "Referred diaphragmatic or biliary pain")
		shoulder.Clinical.RelatedZones = append(shoulder.Clinical.RelatedZones, related(RelationReferred, "RIGHT_HYPOCHONDRIUM")...)
	}

	return []Zone{
		shoulder,
		arm,
		{
			ID: p + "ELBOW", Labels: labels(w.en+" elbow", "Coude "+w.frM, "Codo "+w.esM),
			Category: CategoryUpperLimb, Systems: msk, ParentID: parent, Terminal: true,
			Aliases: []string{lower("elbow")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Lateral epicondylitis", "Olecranon bursitis", "Radial head fracture"},
				RedFlags:        []RedFlag{FlagFracture, FlagSepticArthritis},
				DiagnosticCodes: []string{"M77.10", "M70.20", "S52.123"},
				RelatedZones:    related(RelationAdjacent, p+"ARM", p+"FOREARM"),
				Priority:        3, IsCommon: true,
			},
		},
		{
			ID: p + "FOREARM", Labels: labels(w.en+" forearm", "Avant-bras "+w.frM, "Antebrazo "+w.esM),
			Category: CategoryUpperLimb, Systems: concat(msk, []System{SystemVascular}), ParentID: parent, Terminal: true,
			Aliases: []string{lower("forearm")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Distal radius fracture", "Tendinopathy", "Compartment syndrome"},
				RedFlags:        []RedFlag{FlagCompartment, FlagFracture},
				DiagnosticCodes: []string{"S52.509", "M65.9", "T79.A19"},
				RelatedZones:    concat(related(RelationAdjacent, p+"ELBOW", p+"HAND"), related(RelationDermatomal, p+"ARM")),
				Priority:        4,
			},
		},
		{
			ID: p + "HAND", Labels: labels(w.en+" hand and wrist", "Main et poignet "+w.frM+"s", "Mano y muñeca "+w.esF+"s"),
			Category: CategoryUpperLimb, Systems: concat(msk, []System{SystemNeurological, SystemVascular}), ParentID: parent, Terminal: true,
			Aliases: []string{lower("hand"), lower("wrist")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Carpal tunnel syndrome", "Scaphoid fracture", "Osteoarthritis", "Tenosynovitis"},
				RedFlags:        []RedFlag{FlagTendonInjury, FlagLimbIschaemia},
				DiagnosticCodes: []string{"G56.00", "S62.009", "M19.049"},
				RelatedZones:    concat(related(RelationAdjacent, p+"FOREARM"), related(RelationDermatomal, p+"ARM")),
				Priority:        3, IsCommon: true,
			},
		},
	}
}

func lowerLimb(s string) []Zone {
	w := side(s)
	p := w.id + "_"
	lower := func(x string) string { return strings.ToLower(w.en) + " " + x }
	parent := w.id + "_LOWER_LIMB"
	msk := []System{SystemMusculoskeletal}

	return []Zone{
		{
			ID: p + "HIP", Labels: labels(w.en+" hip", "Hanche "+w.frF, "Cadera "+w.esF),
			Category: CategoryLowerLimb, Systems: msk, ParentID: parent, Terminal: true,
			Aliases: []string{lower("hip")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Hip osteoarthritis", "Trochanteric bursitis", "Hip fracture"},
				RedFlags:        []RedFlag{FlagHipFracture, FlagSepticArthritis},
				DiagnosticCodes: []string{"M16.10", "M70.60", "S72.009"},
				RelatedZones:    concat(related(RelationAdjacent, p+"THIGH", w.groin), related(RelationReferred, p+"KNEE")),
				Priority:        5, IsCommon: true,
			},
		},
		{
			ID: p + "THIGH", Labels: labels(w.en+" thigh", "Cuisse "+w.frF, "Muslo "+w.esM),
			Category: CategoryLowerLimb, Systems: concat(msk, []System{SystemVascular, SystemNeurological}), ParentID: parent, Terminal: true,
			Aliases: []string{lower("thigh")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Hamstring strain", "Meralgia paraesthetica", "Proximal deep vein thrombosis", "Sciatica"},
				RedFlags:        []RedFlag{FlagDeepVeinThrombosis, FlagCompartment},
				DiagnosticCodes: []string{"S76.319", "G57.10", "I82.419"},
				RelatedZones:    concat(related(RelationAdjacent, p+"HIP", p+"KNEE"), related(RelationDermatomal, p+"CALF")),
				Priority:        4,
			},
		},
		{
			ID: p + "KNEE", Labels: labels(w.en+" knee", "Genou "+w.frM, "Rodilla "+w.esF),
			Category: CategoryLowerLimb, Systems: msk, ParentID: parent, Terminal: true,
			Aliases: []string{lower("knee"), lower("patella")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Knee osteoarthritis", "Meniscal tear", "Ligament sprain", "Septic arthritis", "Gout"},
				RedFlags:        []RedFlag{FlagSepticArthritis, FlagFracture},
				DiagnosticCodes: []string{"M17.10", "S83.209", "S83.509", "M00.969"},
				RelatedZones:    concat(related(RelationAdjacent, p+"THIGH", p+"CALF"), related(RelationReferred, p+"HIP")),
				Priority:        4, IsCommon: true,
			},
		},
		{
			ID: p + "CALF", Labels: labels(w.en+" calf and shin", "Mollet "+w.frM, "Pantorrilla "+w.esF),
			Category: CategoryLowerLimb, Systems: concat(msk, []System{SystemVascular}), ParentID: parent, Terminal: true,
			Aliases: []string{lower("calf"), lower("shin")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Deep vein thrombosis", "Calf strain", "Achilles rupture", "Cellulitis"},
				RedFlags:        []RedFlag{FlagDeepVeinThrombosis, FlagCompartment, FlagLimbIschaemia},
				DiagnosticCodes: []string{"I82.409", "S86.919", "S86.019", "L03.119"},
				RelatedZones:    concat(related(RelationAdjacent, p+"KNEE", p+"FOOT"), related(RelationDermatomal, p+"FOOT")),
				Priority:        6,
			},
		},
		{
			ID: p + "FOOT", Labels: labels(w.en+" foot and ankle", "Pied et cheville "+w.frM+"s", "Pie y tobillo "+w.esM+"s"),
			Category: CategoryLowerLimb, Systems: concat(msk, []System{SystemVascular, SystemDermatological}), ParentID: parent, Terminal: true,
			Aliases: []string{lower("foot"), lower("ankle")},
			Clinical: &ClinicalContext{
				Diagnoses:       []string{"Ankle sprain", "Plantar fasciitis", "Gout", "Diabetic foot ulcer"},
				RedFlags:        []RedFlag{FlagFracture, FlagDiabeticFoot, FlagLimbIschaemia},
				DiagnosticCodes: []string{"S93.409", "M72.2", "M10.9", "E11.621"},
				RelatedZones:    concat(related(RelationAdjacent, p+"CALF"), related(RelationDermatomal, p+"CALF")),
				Priority:        3, IsCommon: true,
			},
		},
	}
}
