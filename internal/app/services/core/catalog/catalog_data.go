package catalog

import "labtrack-service/internal/app/models"

// testPackages is the served price list. Prices are in rupees.
var testPackages = []models.TestPackage{
	// Biochemistry
	{ID: "sugar-1", Category: "Biochemistry", Name: "FBS (Fasting Blood Sugar)", Price: 60, Description: "Glucose level after 8-12 hours of fasting.", Parameters: []string{"Glucose (Fasting)"}},
	{ID: "sugar-2", Category: "Biochemistry", Name: "PPBS (Post Prandial)", Price: 100, Description: "Glucose level 2 hours after a meal.", Parameters: []string{"Glucose (PP)"}},
	{ID: "sugar-3", Category: "Biochemistry", Name: "RBS (Random Blood Sugar)", Price: 60, Description: "Glucose level at any time of the day.", Parameters: []string{"Glucose (Random)"}},
	{ID: "sugar-4", Category: "Biochemistry", Name: "HbA1c (Glycosylated Hb)", Price: 450, Description: "3-month average blood sugar levels.", Parameters: []string{"HbA1c %"}},
	{ID: "rft-1", Category: "Biochemistry", Name: "Renal Function Test (RFT)", Price: 400, Description: "Kidney function evaluation including electrolytes.", Parameters: []string{"Urea", "Creatinine", "Uric Acid", "Sodium", "Potassium", "Chloride"}},
	{ID: "lft-1", Category: "Biochemistry", Name: "Liver Function Test (LFT)", Price: 550, Description: "Comprehensive liver enzyme and protein profile.", Parameters: []string{"Total Bilirubin", "Direct Bilirubin", "SGOT (AST)", "SGPT (ALT)", "ALP", "Total Protein", "Albumin"}},
	{ID: "lipid-1", Category: "Biochemistry", Name: "Lipid Profile", Price: 450, Description: "Cholesterol and cardiovascular risk assessment.", Parameters: []string{"Total Cholesterol", "Triglycerides", "HDL", "LDL", "VLDL"}},
	{ID: "thyroid-1", Category: "Biochemistry", Name: "Thyroid Profile", Price: 400, Description: "Thyroid hormone level detection (T3, T4, TSH).", Parameters: []string{"T3", "T4", "TSH"}},
	{ID: "cardiac-1", Category: "Biochemistry", Name: "Cardiac Markers", Price: 1500, Description: "Critical heart enzymes for emergency assessment.", Parameters: []string{"Troponin-I", "CK-MB", "LDH"}},
	{ID: "vit-1", Category: "Biochemistry", Name: "Vitamin D (25-OH)", Price: 1200, Description: "Bone health and immunity marker.", Parameters: []string{"Vitamin D"}},
	{ID: "vit-2", Category: "Biochemistry", Name: "Vitamin B12", Price: 850, Description: "Nerve health and energy marker.", Parameters: []string{"Vitamin B12"}},
	{ID: "min-1", Category: "Biochemistry", Name: "Calcium", Price: 200, Description: "Bone mineral levels.", Parameters: []string{"Calcium"}},
	{ID: "min-2", Category: "Biochemistry", Name: "Iron Profile", Price: 250, Description: "Iron deficiency markers.", Parameters: []string{"Iron"}},

	// Microbiology
	{ID: "urine-1", Category: "Microbiology", Name: "Urine Routine & Microscopy", Price: 100, Description: "Physical and chemical analysis of urine.", Parameters: []string{"Colour", "pH", "Protein", "Sugar", "Pus Cells", "RBC"}},
	{ID: "stool-1", Category: "Microbiology", Name: "Stool Examination", Price: 150, Description: "Parasite and occult blood detection.", Parameters: []string{"Occult Blood", "Ova/Cyst", "Parasites"}},
	{ID: "culture-1", Category: "Microbiology", Name: "Urine Culture", Price: 600, Description: "Bacterial growth identification.", Parameters: []string{"Urine Culture"}},
	{ID: "culture-2", Category: "Microbiology", Name: "Blood Culture", Price: 1200, Description: "Detecting infection in blood.", Parameters: []string{"Blood Culture"}},
	{ID: "sero-1", Category: "Microbiology", Name: "Widal Test", Price: 200, Description: "Typhoid fever detection.", Parameters: []string{"Widal-O", "Widal-H"}},
	{ID: "sero-2", Category: "Microbiology", Name: "CRP", Price: 400, Description: "Infection/Inflammation marker.", Parameters: []string{"CRP Value"}},
	{ID: "sero-3", Category: "Microbiology", Name: "Dengue NS1 Antigen", Price: 600, Description: "Early detection of Dengue virus.", Parameters: []string{"Dengue NS1"}},
	{ID: "sero-4", Category: "Microbiology", Name: "HIV 1 & 2", Price: 350, Description: "Screening for HIV infection.", Parameters: []string{"HIV Result"}},

	// Clinical Pathology
	{ID: "cbp-1", Category: "Clinical Pathology", Name: "Complete Blood Picture (CBP)", Price: 200, Description: "Full analysis of red cells, white cells, and platelets.", Parameters: []string{"Hemoglobin", "RBC", "WBC", "Platelets", "Neutrophils", "Lymphocytes", "ESR"}},
	{ID: "coag-1", Category: "Clinical Pathology", Name: "Coagulation Profile", Price: 400, Description: "Blood clotting and INR monitoring.", Parameters: []string{"PT", "INR", "APTT"}},
	{ID: "semen-1", Category: "Clinical Pathology", Name: "Semen Analysis", Price: 500, Description: "Fertility assessment.", Parameters: []string{"Volume", "Count", "Motility", "Morphology"}},
}

// normalRanges follows standard NABL reference bands.
var normalRanges = map[string]models.ReferenceRange{
	"Glucose (Fasting)": {Range: "70–99", Unit: "mg/dL"},
	"Glucose (PP)":      {Range: "<140", Unit: "mg/dL"},
	"Glucose (Random)":  {Range: "70–140", Unit: "mg/dL"},
	"HbA1c %":           {Range: "4.0–5.6", Unit: "%"},
	"Urea":              {Range: "15–40", Unit: "mg/dL"},
	"Creatinine":        {Range: "0.6–1.3", Unit: "mg/dL"},
	"Uric Acid":         {Range: "3.4–7.0", Unit: "mg/dL"},
	"Sodium":            {Range: "135–145", Unit: "mmol/L"},
	"Potassium":         {Range: "3.5–5.1", Unit: "mmol/L"},
	"Chloride":          {Range: "98–107", Unit: "mmol/L"},
	"Total Bilirubin":   {Range: "0.3–1.2", Unit: "mg/dL"},
	"Direct Bilirubin":  {Range: "0.0–0.3", Unit: "mg/dL"},
	"SGOT (AST)":        {Range: "<40", Unit: "U/L"},
	"SGPT (ALT)":        {Range: "<41", Unit: "U/L"},
	"ALP":               {Range: "44–147", Unit: "U/L"},
	"Total Protein":     {Range: "6.0–8.3", Unit: "g/dL"},
	"Albumin":           {Range: "3.5–5.0", Unit: "g/dL"},
	"Total Cholesterol": {Range: "<200", Unit: "mg/dL"},
	"Triglycerides":     {Range: "<150", Unit: "mg/dL"},
	"HDL":               {Range: ">40", Unit: "mg/dL"},
	"LDL":               {Range: "<100", Unit: "mg/dL"},
	"VLDL":              {Range: "5–40", Unit: "mg/dL"},
	"T3":                {Range: "80–200", Unit: "ng/dL"},
	"T4":                {Range: "5.1–14.1", Unit: "µg/dL"},
	"TSH":               {Range: "0.4–4.0", Unit: "µIU/mL"},
	"Hemoglobin":        {Range: "13–17", Unit: "g/dL"},
	"RBC":               {Range: "4.5–5.9", Unit: "million"},
	"WBC":               {Range: "4000–11000", Unit: "/µL"},
	"Platelets":         {Range: "1.5–4.5", Unit: "lakh"},
	"CRP Value":         {Range: "<6", Unit: "mg/L"},
	"Vitamin D":         {Range: "30–100", Unit: "ng/mL"},
	"Vitamin B12":       {Range: "200–900", Unit: "pg/mL"},
	"Troponin-I":        {Range: "<0.04", Unit: "ng/mL"},
	"CK-MB":             {Range: "<25", Unit: "U/L"},
	"LDH":               {Range: "140–280", Unit: "U/L"},
	"Calcium":           {Range: "8.5–10.5", Unit: "mg/dL"},
	"Iron":              {Range: "60–170", Unit: "µg/dL"},
	"Colour":            {Range: "Pale Yellow", Unit: ""},
	"pH":                {Range: "4.5–8.0", Unit: ""},
	"Protein":           {Range: "Negative", Unit: ""},
	"Sugar":             {Range: "Negative", Unit: ""},
	"Pus Cells":         {Range: "0–5", Unit: "/HPF"},
	"RBC (Urine)":       {Range: "0–2", Unit: "/HPF"},
	"Occult Blood":      {Range: "Negative", Unit: ""},
	"Ova/Cyst":          {Range: "Absent", Unit: ""},
	"Parasites":         {Range: "Absent", Unit: ""},
	"Widal-O":           {Range: "Negative", Unit: ""},
	"Widal-H":           {Range: "Negative", Unit: ""},
	"HIV Result":        {Range: "Non-Reactive", Unit: ""},
	"Dengue NS1":        {Range: "Negative", Unit: ""},
	"Neutrophils":       {Range: "40–70", Unit: "%"},
	"Lymphocytes":       {Range: "20–40", Unit: "%"},
	"ESR":               {Range: "M: <15 / F: <20", Unit: "mm/hr"},
	"PT":                {Range: "11–13.5", Unit: "sec"},
	"INR":               {Range: "0.8–1.2", Unit: ""},
	"APTT":              {Range: "25–35", Unit: "sec"},
	"Volume":            {Range: "≥1.5", Unit: "mL"},
	"Count":             {Range: "≥15", Unit: "million/mL"},
	"Motility":          {Range: "≥40", Unit: "%"},
	"Morphology":        {Range: "≥4", Unit: "%"},
}
