package extraction

import "github.com/jonathan/resume-matcher/internal/parsing"

const sampleResume = `Jane Doe
Senior Software Engineer
Lagos, Nigeria | jane.doe@gmail.com | +234 803 123 4567
linkedin.com/in/janedoe | github.com/janedoe | janedoe.dev

Professional Summary
Results-driven Senior Software Engineer with 7+ years of experience building scalable backend systems and leading distributed teams across fintech and e-commerce.

Technical Skills
Go, Python, PostgreSQL, Docker, Kubernetes, AWS, React

Soft Skills
Leadership, Communication, Problem-solving

Work Experience
Senior Software Engineer at Paystack
Jan 2020 - Present
Software Engineer, Andela Technologies
2016 - 2019

Education
B.Sc. Computer Science
University of Lagos

Certifications
AWS Certified Solutions Architect
CKA

Languages
English, Yoruba, French
`

func normalized(s string) string {
	return parsing.Normalize(s)
}
