package seed

// ICD10Codes is the catalog loaded into diagnosis_codes.
var ICD10Codes = []DiagnosisCodeSeed{
	{Code: "A09", Description: "Infectious gastroenteritis and colitis, unspecified"},
	{Code: "A41.9", Description: "Sepsis, unspecified organism"},
	{Code: "B34.9", Description: "Viral infection, unspecified"},
	{Code: "A49.9", Description: "Bacterial infection, unspecified"},
	{Code: "J06.9", Description: "Acute upper respiratory infection, unspecified"},
	{Code: "C50.919", Description: "Malignant neoplasm of unspecified site of unspecified female breast"},
	{Code: "C61", Description: "Malignant neoplasm of prostate"},
	{Code: "C18.9", Description: "Malignant neoplasm of colon, unspecified"},
	{Code: "D50.9", Description: "Iron deficiency anemia, unspecified"},
	{Code: "E11.9", Description: "Type 2 diabetes mellitus without complications"},
	{Code: "E11.65", Description: "Type 2 diabetes mellitus with hyperglycemia"},
	{Code: "E78.5", Description: "Hyperlipidemia, unspecified"},
	{Code: "E66.9", Description: "Obesity, unspecified"},
	{Code: "E03.9", Description: "Hypothyroidism, unspecified"},
	{Code: "E05.90", Description: "Thyrotoxicosis, unspecified without thyrotoxic crisis or storm"},
	{Code: "E55.9", Description: "Vitamin D deficiency, unspecified"},
	{Code: "E87.6", Description: "Hypokalemia"},
	{Code: "F32.9", Description: "Major depressive disorder, single episode, unspecified"},
	{Code: "F41.9", Description: "Anxiety disorder, unspecified"},
	{Code: "F43.10", Description: "Post-traumatic stress disorder, unspecified"},
	{Code: "F10.20", Description: "Alcohol dependence, uncomplicated"},
	{Code: "F90.9", Description: "Attention-deficit hyperactivity disorder, unspecified type"},
	{Code: "G43.909", Description: "Migraine, unspecified, not intractable, without status migrainosus"},
	{Code: "G44.1", Description: "Vascular headache, not elsewhere classified"},
	{Code: "G47.00", Description: "Insomnia, unspecified"},
	{Code: "G89.29", Description: "Other chronic pain"},
	{Code: "G62.9", Description: "Polyneuropathy, unspecified"},
	{Code: "H10.9", Description: "Conjunctivitis, unspecified"},
	{Code: "H52.4", Description: "Presbyopia"},
	{Code: "H53.9", Description: "Visual disturbance, unspecified"},
	{Code: "H66.90", Description: "Otitis media, unspecified, unspecified ear"},
	{Code: "H81.10", Description: "Benign paroxysmal vertigo, unspecified ear"},
	{Code: "H91.90", Description: "Unspecified hearing loss, unspecified ear"},
	{Code: "I10", Description: "Essential (primary) hypertension"},
	{Code: "I25.10", Description: "Atherosclerotic heart disease of native coronary artery without angina pectoris"},
	{Code: "I48.91", Description: "Unspecified atrial fibrillation"},
	{Code: "I50.9", Description: "Heart failure, unspecified"},
	{Code: "I63.9", Description: "Cerebral infarction, unspecified"},
	{Code: "I73.9", Description: "Peripheral vascular disease, unspecified"},
	{Code: "J00", Description: "Acute nasopharyngitis [common cold]"},
	{Code: "J01.90", Description: "Acute sinusitis, unspecified"},
	{Code: "J02.9", Description: "Acute pharyngitis, unspecified"},
	{Code: "J03.90", Description: "Acute tonsillitis, unspecified"},
	{Code: "J18.9", Description: "Pneumonia, unspecified organism"},
	{Code: "J20.9", Description: "Acute bronchitis, unspecified"},
	{Code: "J40", Description: "Bronchitis, not specified as acute or chronic"},
	{Code: "J44.9", Description: "Chronic obstructive pulmonary disease, unspecified"},
	{Code: "J45.909", Description: "Unspecified asthma, uncomplicated"},
	{Code: "K21.9", Description: "Gastro-esophageal reflux disease without esophagitis"},
	{Code: "K29.70", Description: "Gastritis, unspecified, without bleeding"},
	{Code: "K30", Description: "Functional dyspepsia"},
	{Code: "K58.9", Description: "Irritable bowel syndrome without diarrhea"},
	{Code: "K59.00", Description: "Constipation, unspecified"},
	{Code: "K80.20", Description: "Calculus of gallbladder without cholecystitis without obstruction"},
	{Code: "K92.9", Description: "Disease of digestive system, unspecified"},
	{Code: "L20.9", Description: "Atopic dermatitis, unspecified"},
	{Code: "L30.9", Description: "Dermatitis, unspecified"},
	{Code: "L50.9", Description: "Urticaria, unspecified"},
	{Code: "L60.0", Description: "Ingrowing nail"},
	{Code: "L70.0", Description: "Acne vulgaris"},
	{Code: "M25.50", Description: "Pain in unspecified joint"},
	{Code: "M54.5", Description: "Low back pain"},
	{Code: "M54.2", Description: "Cervicalgia"},
	{Code: "M79.3", Description: "Panniculitis, unspecified"},
	{Code: "M79.1", Description: "Myalgia"},
	{Code: "M19.90", Description: "Unspecified osteoarthritis, unspecified site"},
	{Code: "M81.0", Description: "Age-related osteoporosis without current pathological fracture"},
	{Code: "M62.81", Description: "Muscle weakness (generalized)"},
	{Code: "N18.9", Description: "Chronic kidney disease, unspecified"},
	{Code: "N30.00", Description: "Acute cystitis without hematuria"},
	{Code: "N39.0", Description: "Urinary tract infection, site not specified"},
	{Code: "N40.0", Description: "Benign prostatic hyperplasia without lower urinary tract symptoms"},
	{Code: "N92.0", Description: "Excessive and frequent menstruation with regular cycle"},
	{Code: "N94.6", Description: "Dysmenorrhea, unspecified"},
	{Code: "O21.9", Description: "Vomiting of pregnancy, unspecified"},
	{Code: "O26.90", Description: "Pregnancy related conditions, unspecified, unspecified trimester"},
	{Code: "R05.9", Description: "Cough, unspecified"},
	{Code: "R06.02", Description: "Shortness of breath"},
	{Code: "R07.9", Description: "Chest pain, unspecified"},
	{Code: "R10.9", Description: "Unspecified abdominal pain"},
	{Code: "R11.0", Description: "Nausea"},
	{Code: "R11.2", Description: "Nausea with vomiting, unspecified"},
	{Code: "R19.7", Description: "Diarrhea, unspecified"},
	{Code: "R50.9", Description: "Fever, unspecified"},
	{Code: "R51.9", Description: "Headache, unspecified"},
	{Code: "R53.83", Description: "Other fatigue"},
	{Code: "R63.4", Description: "Abnormal weight loss"},
	{Code: "R73.09", Description: "Other abnormal glucose"},
	{Code: "S06.0X0A", Description: "Concussion without loss of consciousness, initial encounter"},
	{Code: "S13.4XXA", Description: "Sprain of ligaments of cervical spine, initial encounter"},
	{Code: "S43.401A", Description: "Unspecified sprain of right shoulder joint, initial encounter"},
	{Code: "S83.511A", Description: "Sprain of anterior cruciate ligament of right knee, initial encounter"},
	{Code: "S93.401A", Description: "Sprain of unspecified ligament of right ankle, initial encounter"},
	{Code: "T14.90XA", Description: "Injury, unspecified, initial encounter"},
	{Code: "W19.XXXA", Description: "Unspecified fall, initial encounter"},
	{Code: "Z00.00", Description: "Encounter for general adult medical examination without abnormal findings"},
	{Code: "Z01.419", Description: "Encounter for gynecological examination (general) (routine) without abnormal findings"},
	{Code: "Z23", Description: "Encounter for immunization"},
	{Code: "Z79.4", Description: "Long term (current) use of insulin"},
	{Code: "Z79.899", Description: "Other long term (current) drug therapy"},
	{Code: "Z86.59", Description: "Personal history of other mental and behavioral disorders"},
	{Code: "Z87.891", Description: "Personal history of nicotine dependence"},
}
