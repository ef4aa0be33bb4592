// Package template holds the compiled examination report catalog and the
// placeholder substitution engine.
package template

// Template is a report blueprint with {{placeholder}} slots.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Blueprint   string `json:"template"`
}

// catalog lists the compiled templates in presentation order.
var catalog = []Template{
	{
		ID:          "abdomen",
		Name:        "Abdomen USG",
		Description: "Complete abdominal ultrasound examination",
		Blueprint: `ULTRASOUND ABDOMEN

PATIENT NAME: {{patientName}}
AGE/DOB: {{age}}
GENDER: {{gender}}
DATE OF EXAMINATION: {{examDate}}
REFERRING DOCTOR: {{referringDoctor}}

CLINICAL HISTORY:
{{clinicalHistory}}

FINDINGS:

LIVER:
Normal in size and echotexture. No focal lesion. Intrahepatic biliary radicles are not dilated.

GALLBLADDER:
Normal in size. Wall thickness normal. No calculus/mass seen.

COMMON BILE DUCT:
Normal in caliber (measures ___ mm).

PANCREAS:
Normal in size and echotexture. Main pancreatic duct not dilated.

SPLEEN:
Normal in size and echotexture. No focal lesion.

KIDNEYS:
Both kidneys are normal in size, shape and position.
Right kidney measures: ___ cm
Left kidney measures: ___ cm
Cortical thickness and echotexture normal bilaterally.
No calculus/hydronephrosis/mass seen.

URINARY BLADDER:
Well distended. Wall thickness normal. No calculus/mass seen.

PROSTATE (if applicable):
Normal in size. No focal lesion.

OTHERS:
No free fluid in abdomen.
No significant lymphadenopathy.

IMPRESSION:
Study within normal limits.

[Additional findings/notes can be added above]

---
RADIOLOGIST: {{doctorName}}
DATE: {{reportDate}}`,
	},
	{
		ID:          "pelvis",
		Name:        "Pelvis USG",
		Description: "Pelvic ultrasound examination",
		Blueprint: `ULTRASOUND PELVIS

PATIENT NAME: {{patientName}}
AGE/DOB: {{age}}
GENDER: {{gender}}
DATE OF EXAMINATION: {{examDate}}
REFERRING DOCTOR: {{referringDoctor}}

CLINICAL HISTORY:
{{clinicalHistory}}

FINDINGS:

URINARY BLADDER:
Well distended. Wall thickness normal. No calculus/mass/diverticulum seen.

UTERUS (for females):
Anteverted/Retroverted, normal in size.
Measures: ___ x ___ x ___ cm
Endometrial thickness: ___ mm
Myometrium shows normal echotexture. No fibroid/mass seen.

CERVIX:
Normal.

ADNEXA:
Right ovary: Normal in size and echotexture. Measures ___ x ___ cm. No cyst/mass.
Left ovary: Normal in size and echotexture. Measures ___ x ___ cm. No cyst/mass.

PROSTATE (for males):
Normal in size, shape and echotexture.
Measures: ___ x ___ x ___ cm (Volume: ___ cc)
No focal lesion/calcification.

SEMINAL VESICLES (for males):
Normal.

POUCH OF DOUGLAS/RECTOVESICAL POUCH:
No free fluid.

IMPRESSION:
Study within normal limits.

[Additional findings/notes can be added above]

---
RADIOLOGIST: {{doctorName}}
DATE: {{reportDate}}`,
	},
	{
		ID:          "obstetric",
		Name:        "Obstetric USG",
		Description: "Pregnancy ultrasound examination",
		Blueprint: `OBSTETRIC ULTRASOUND

PATIENT NAME: {{patientName}}
AGE/DOB: {{age}}
GENDER: Female
DATE OF EXAMINATION: {{examDate}}
REFERRING DOCTOR: {{referringDoctor}}

CLINICAL HISTORY:
{{clinicalHistory}}
LMP: ___________
EDD by LMP: ___________

FINDINGS:

UTERUS:
Gravid uterus. Single/Twin live intrauterine gestation.

FETAL BIOMETRY:
BPD: ___ mm
HC: ___ mm
AC: ___ mm
FL: ___ mm

GESTATIONAL AGE: ___ weeks ___ days

FETAL WEIGHT: Approximately ___ grams

PLACENTA:
Located at: Anterior/Posterior/Fundal/Lateral wall
Grade: ___
No evidence of placenta previa.

AMNIOTIC FLUID:
AFI: ___ cm (Normal/Increased/Decreased)

FETAL HEART:
Regular cardiac activity seen. FHR: ___ bpm

FETAL MOVEMENTS:
Present

FETAL PRESENTATION:
Cephalic/Breech/Transverse

CERVIX:
Length: ___ mm. Internal os closed.

IMPRESSION:
Single/Twin live intrauterine pregnancy corresponding to ___ weeks ___ days by biometry.
EDD by USG: ___________

[Additional findings/notes can be added above]

---
RADIOLOGIST: {{doctorName}}
DATE: {{reportDate}}`,
	},
	{
		ID:          "thyroid",
		Name:        "Thyroid USG (Small Parts)",
		Description: "Thyroid and neck ultrasound",
		Blueprint: `ULTRASOUND THYROID

PATIENT NAME: {{patientName}}
AGE/DOB: {{age}}
GENDER: {{gender}}
DATE OF EXAMINATION: {{examDate}}
REFERRING DOCTOR: {{referringDoctor}}

CLINICAL HISTORY:
{{clinicalHistory}}

FINDINGS:

THYROID GLAND:
Right lobe: Normal in size and echotexture.
Measures: ___ x ___ x ___ cm (AP x TR x CC)
Volume: ___ ml

Left lobe: Normal in size and echotexture.
Measures: ___ x ___ x ___ cm (AP x TR x CC)
Volume: ___ ml

Isthmus: Normal thickness (___ mm)

NODULES/LESIONS:
No discrete nodule/cystic lesion identified.
[Or describe any nodules: Size, location, echogenicity, margins, calcification, vascularity]

LYMPH NODES:
Normal sized lymph nodes in bilateral cervical regions.
No pathological lymphadenopathy.

PARATHYROID:
Not separately visualized (normal finding).

MAJOR VESSELS:
Common carotid arteries and internal jugular veins show normal course and caliber bilaterally.

IMPRESSION:
Normal thyroid gland study.

[Additional findings/notes can be added above]

---
RADIOLOGIST: {{doctorName}}
DATE: {{reportDate}}`,
	},
	{
		ID:          "musculoskeletal",
		Name:        "Musculoskeletal USG",
		Description: "MSK ultrasound for joints, tendons, muscles",
		Blueprint: `MUSCULOSKELETAL ULTRASOUND

PATIENT NAME: {{patientName}}
AGE/DOB: {{age}}
GENDER: {{gender}}
DATE OF EXAMINATION: {{examDate}}
REFERRING DOCTOR: {{referringDoctor}}

CLINICAL HISTORY:
{{clinicalHistory}}

REGION EXAMINED: [Specify: Shoulder/Knee/Ankle/Wrist/etc.]

FINDINGS:

BONES:
Bony cortex appears smooth and intact.
No fracture/erosion identified.

JOINTS:
Joint space appears normal.
No joint effusion.
Synovial thickness normal.

TENDONS:
Tendons show normal fibrillar echotexture.
No tendon tear/tendinosis/tenosynovitis.

LIGAMENTS:
Ligaments appear intact.
No sprain/tear identified.

MUSCLES:
Normal muscle bulk and echotexture.
No hematoma/tear/mass.

BURSAE:
No bursitis.

SOFT TISSUES:
No significant soft tissue swelling.
No collection/mass.

VASCULARITY:
Normal vascular flow on Doppler study.

IMPRESSION:
Study within normal limits.

[Additional findings/notes can be added above]

---
RADIOLOGIST: {{doctorName}}
DATE: {{reportDate}}`,
	},
}

// List returns all templates in presentation order.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the template with the given id.
func Get(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
