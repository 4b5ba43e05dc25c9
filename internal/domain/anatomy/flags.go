package anatomy

// Red flags shared between zones. A flag attached to several zones keeps a
// single ID so that consumers can deduplicate across a multi-zone selection.
var (
	FlagAcuteCoronary = RedFlag{
		ID:        "rf_acute_coronary",
		Symptom:   "Pressure-like chest pain spreading to the arm, jaw or back",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now; chew 300 mg aspirin unless allergic",
		Condition: "Acute Coronary Syndrome",
		Criteria:  []string{"pain lasting more than 20 minutes", "sweating", "shortness of breath", "nausea"},
	}
	FlagAorticDissection = RedFlag{
		ID:        "rf_aortic_dissection",
		Symptom:   "Sudden tearing pain radiating through to the back",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Aortic dissection",
		Criteria:  []string{"maximal at onset", "pulse or blood pressure difference between arms"},
	}
	FlagPulmonaryEmbolism = RedFlag{
		ID:        "rf_pulmonary_embolism",
		Symptom:   "Pleuritic chest pain with sudden breathlessness",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Pulmonary embolism",
		Criteria:  []string{"recent surgery or immobility", "unilateral leg swelling", "haemoptysis"},
	}
	FlagPneumothorax = RedFlag{
		ID:        "rf_pneumothorax",
		Symptom:   "Sudden one-sided chest pain with breathlessness",
		Severity:  SeverityUrgent,
		Action:    "Attend an emergency department today",
		Condition: "Pneumothorax",
	}
	FlagPericarditis = RedFlag{
		ID:        "rf_pericarditis",
		Symptom:   "Sharp central chest pain eased by leaning forward",
		Severity:  SeverityUrgent,
		Action:    "Same-day medical assessment with ECG",
		Condition: "Pericarditis",
	}
	FlagSubarachnoid = RedFlag{
		ID:        "rf_subarachnoid",
		Symptom:   "Thunderclap headache, worst ever, maximal within a minute",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Subarachnoid haemorrhage",
	}
	FlagMeningitis = RedFlag{
		ID:        "rf_meningitis",
		Symptom:   "Headache with fever, neck stiffness or non-blanching rash",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Bacterial meningitis",
	}
	FlagGiantCellArteritis = RedFlag{
		ID:        "rf_giant_cell_arteritis",
		Symptom:   "New temple headache with scalp tenderness or jaw claudication over age 50",
		Severity:  SeverityUrgent,
		Action:    "Same-day assessment; risk of permanent visual loss",
		Condition: "Giant cell arteritis",
	}
	FlagAngleClosure = RedFlag{
		ID:        "rf_angle_closure",
		Symptom:   "Painful red eye with blurred vision and haloes",
		Severity:  SeverityUrgent,
		Action:    "Urgent ophthalmology or emergency assessment",
		Condition: "Acute angle-closure glaucoma",
	}
	FlagVisionLoss = RedFlag{
		ID:        "rf_vision_loss",
		Symptom:   "Sudden loss of vision, curtain over vision or new floaters with flashes",
		Severity:  SeverityUrgent,
		Action:    "Urgent ophthalmology assessment",
		Condition: "Retinal detachment or retinal artery occlusion",
	}
	FlagMastoiditis = RedFlag{
		ID:        "rf_mastoiditis",
		Symptom:   "Ear pain with swelling and redness behind the ear",
		Severity:  SeverityUrgent,
		Action:    "Same-day medical assessment",
		Condition: "Mastoiditis",
	}
	FlagAirway = RedFlag{
		ID:        "rf_airway",
		Symptom:   "Throat pain with drooling, stridor or inability to swallow saliva",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now; keep upright",
		Condition: "Epiglottitis or deep neck space infection",
	}
	FlagCervicalCord = RedFlag{
		ID:        "rf_cervical_cord",
		Symptom:   "Neck pain with arm weakness, clumsy hands or gait disturbance",
		Severity:  SeverityUrgent,
		Action:    "Urgent spinal assessment",
		Condition: "Cervical myelopathy",
	}
	FlagAppendicitis = RedFlag{
		ID:        "rf_appendicitis",
		Symptom:   "Right lower quadrant pain, often migrating from the navel, with fever or vomiting",
		Severity:  SeverityUrgent,
		Action:    "Same-day surgical assessment; nothing by mouth",
		Condition: "Acute appendicitis",
		Criteria:  []string{"migration from periumbilical region", "rebound tenderness", "anorexia"},
	}
	FlagCholecystitis = RedFlag{
		ID:        "rf_cholecystitis",
		Symptom:   "Right upper quadrant pain with fever or jaundice",
		Severity:  SeverityUrgent,
		Action:    "Same-day medical assessment",
		Condition: "Acute cholecystitis or cholangitis",
	}
	FlagPancreatitis = RedFlag{
		ID:        "rf_pancreatitis",
		Symptom:   "Severe epigastric pain boring through to the back with vomiting",
		Severity:  SeverityUrgent,
		Action:    "Attend an emergency department today",
		Condition: "Acute pancreatitis",
	}
	FlagPerforation = RedFlag{
		ID:        "rf_perforation",
		Symptom:   "Sudden severe abdominal pain with a rigid, board-like abdomen",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Perforated viscus",
	}
	FlagSplenicRupture = RedFlag{
		ID:        "rf_splenic_rupture",
		Symptom:   "Left upper abdominal pain after trauma, possibly with left shoulder tip pain",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Splenic rupture",
	}
	FlagAorticAneurysm = RedFlag{
		ID:        "rf_aortic_aneurysm",
		Symptom:   "Central abdominal or back pain with a pulsatile mass or collapse",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Ruptured abdominal aortic aneurysm",
	}
	FlagBowelObstruction = RedFlag{
		ID:        "rf_bowel_obstruction",
		Symptom:   "Colicky abdominal pain with distension, vomiting and no flatus",
		Severity:  SeverityUrgent,
		Action:    "Attend an emergency department today",
		Condition: "Bowel obstruction",
	}
	FlagRenalColic = RedFlag{
		ID:        "rf_renal_colic",
		Symptom:   "Severe loin-to-groin colicky pain",
		Severity:  SeverityUrgent,
		Action:    "Same-day assessment; emergency if fever or single kidney",
		Condition: "Obstructing ureteric stone",
	}
	FlagPyelonephritis = RedFlag{
		ID:        "rf_pyelonephritis",
		Symptom:   "Loin pain with fever and rigors",
		Severity:  SeverityUrgent,
		Action:    "Same-day medical assessment",
		Condition: "Pyelonephritis",
	}
	FlagEctopic = RedFlag{
		ID:        "rf_ectopic",
		Symptom:   "Lower abdominal pain with a missed period, vaginal bleeding or shoulder tip pain",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services if faint; otherwise attend emergency department now",
		Condition: "Ruptured ectopic pregnancy",
	}
	FlagOvarianTorsion = RedFlag{
		ID:        "rf_ovarian_torsion",
		Symptom:   "Sudden severe one-sided pelvic pain with vomiting",
		Severity:  SeverityUrgent,
		Action:    "Attend an emergency department now",
		Condition: "Ovarian torsion",
	}
	FlagDiverticulitis = RedFlag{
		ID:        "rf_diverticulitis",
		Symptom:   "Left lower quadrant pain with fever and change in bowel habit",
		Severity:  SeverityMonitor,
		Action:    "Medical review within 24 hours",
		Condition: "Diverticulitis",
	}
	FlagUrinaryRetention = RedFlag{
		ID:        "rf_urinary_retention",
		Symptom:   "Painful lower abdomen with inability to pass urine",
		Severity:  SeverityUrgent,
		Action:    "Attend an emergency department today",
		Condition: "Acute urinary retention",
	}
	FlagTesticularTorsion = RedFlag{
		ID:        "rf_testicular_torsion",
		Symptom:   "Sudden severe testicular or groin pain",
		Severity:  SeverityImmediate,
		Action:    "Attend an emergency department now; time-critical",
		Condition: "Testicular torsion",
	}
	FlagIncarceratedHernia = RedFlag{
		ID:        "rf_incarcerated_hernia",
		Symptom:   "Painful irreducible groin lump with vomiting",
		Severity:  SeverityUrgent,
		Action:    "Attend an emergency department today",
		Condition: "Incarcerated hernia",
	}
	FlagFournier = RedFlag{
		ID:        "rf_fournier",
		Symptom:   "Rapidly spreading perineal pain, swelling and fever",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Fournier gangrene",
	}
	FlagCaudaEquina = RedFlag{
		ID:        "rf_cauda_equina",
		Symptom:   "Back pain with saddle numbness, bladder or bowel dysfunction",
		Severity:  SeverityImmediate,
		Action:    "Attend an emergency department now for MRI",
		Condition: "Cauda equina syndrome",
	}
	FlagSpinalInfection = RedFlag{
		ID:        "rf_spinal_infection",
		Symptom:   "Back pain with fever, IV drug use or immunosuppression",
		Severity:  SeverityUrgent,
		Action:    "Same-day medical assessment",
		Condition: "Spinal epidural abscess or discitis",
	}
	FlagSpinalMalignancy = RedFlag{
		ID:        "rf_spinal_malignancy",
		Symptom:   "Night pain, weight loss or history of cancer",
		Severity:  SeverityMonitor,
		Action:    "Prompt primary care review and imaging",
		Condition: "Spinal metastasis",
	}
	FlagVertebralFracture = RedFlag{
		ID:        "rf_vertebral_fracture",
		Symptom:   "Back pain after significant trauma or in osteoporosis",
		Severity:  SeverityUrgent,
		Action:    "Immobilise and seek emergency assessment",
		Condition: "Vertebral fracture",
	}
	FlagCompartment = RedFlag{
		ID:        "rf_compartment",
		Symptom:   "Pain out of proportion, worse on passive stretch, tense swollen limb",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Compartment syndrome",
	}
	FlagLimbIschaemia = RedFlag{
		ID:        "rf_limb_ischaemia",
		Symptom:   "Cold, pale, pulseless or numb limb",
		Severity:  SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Acute limb ischaemia",
	}
	FlagDeepVeinThrombosis = RedFlag{
		ID:        "rf_dvt",
		Symptom:   "Unilateral calf or thigh swelling, warmth and tenderness",
		Severity:  SeverityUrgent,
		Action:    "Same-day assessment with D-dimer or ultrasound",
		Condition: "Deep vein thrombosis",
	}
	FlagSepticArthritis = RedFlag{
		ID:        "rf_septic_arthritis",
		Symptom:   "Hot, swollen joint with fever and inability to bear weight or move",
		Severity:  SeverityUrgent,
		Action:    "Same-day joint aspiration",
		Condition: "Septic arthritis",
	}
	FlagFracture = RedFlag{
		ID:        "rf_fracture",
		Symptom:   "Deformity, inability to bear weight or use the limb after injury",
		Severity:  SeverityUrgent,
		Action:    "Immobilise and attend urgent care or emergency department",
		Condition: "Fracture or dislocation",
	}
	FlagHipFracture = RedFlag{
		ID:        "rf_hip_fracture",
		Symptom:   "Hip pain after a fall with a shortened, externally rotated leg",
		Severity:  SeverityUrgent,
		Action:    "Attend an emergency department now",
		Condition: "Hip fracture",
	}
	FlagDiabeticFoot = RedFlag{
		ID:        "rf_diabetic_foot",
		Symptom:   "Foot wound with spreading redness, odour or fever in diabetes",
		Severity:  SeverityUrgent,
		Action:    "Same-day assessment",
		Condition: "Diabetic foot infection",
	}
	FlagTendonInjury = RedFlag{
		ID:        "rf_tendon_injury",
		Symptom:   "Loss of finger movement or numbness after a cut",
		Severity:  SeverityMonitor,
		Action:    "Hand surgery review within 24 hours",
		Condition: "Tendon or digital nerve injury",
	}
)
