package services

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// ProfileRole is a current position listed on the resume.
type ProfileRole struct {
	Title       string
	Company     string
	Description string
}

// ProfileExperience is a summarized experience line on the resume.
type ProfileExperience struct {
	Role        string
	Duration    string
	Description string
}

// Profile holds the static resume data. It mirrors the developer info shown
// on the site and is intentionally not database-backed: the resume download
// must work even with an empty content store.
type Profile struct {
	Name         string
	Title        string
	Subtitle     string
	Learning     string
	Tagline      string
	Bio          string
	Email        string
	Location     string
	PortfolioURL string
	Roles        []ProfileRole
	Experiences  []ProfileExperience
	SkillGroups  []struct{ Label, Items string }
}

// DefaultProfile is the profile the resume endpoint serializes.
var DefaultProfile = Profile{
	Name:         "Saad Bin Tofayel Tahsin",
	Title:        "Python Developer",
	Subtitle:     "Fullstack Web Developer",
	Learning:     "Data Science Learner",
	Tagline:      "I build performant systems, responsive web apps, and I'm diving deep into data. Ready to bring your ideas to life with clean code and stunning interfaces.",
	Bio:          "With 2.5+ years of Python development experience and 1.5+ years in fullstack web development, I've built everything from scalable backend APIs to beautiful, responsive frontends. Currently expanding my expertise into data science and machine learning.",
	Email:        "saadbintofayeltahsin@gmail.com",
	Location:     "Dhaka, Bangladesh",
	PortfolioURL: "https://saad-tahsin-portfolio.com",
	Roles: []ProfileRole{
		{Title: "President", Company: "CyberHub - The IT Club", Description: "School IT club leadership and tech initiatives"},
		{Title: "CEO", Company: "ZnForge", Description: "Leading innovative tech solutions and product development"},
	},
	Experiences: []ProfileExperience{
		{Role: "Python Developer", Duration: "2.5+ Years", Description: "Backend APIs, automation, data processing"},
		{Role: "Fullstack Developer", Duration: "1.5+ Years", Description: "React, Node.js, database design"},
		{Role: "Data Science Student", Duration: "Currently Learning", Description: "TensorFlow, Pandas, Scikit-learn"},
	},
	SkillGroups: []struct{ Label, Items string }{
		{"Programming Languages", "Python, JavaScript/TypeScript, C/C++, Java, SQL"},
		{"Web Technologies", "React, Node.js, Express, HTML/CSS, Tailwind CSS"},
		{"Backend & Databases", "PostgreSQL, MongoDB, REST APIs, FastAPI, Flask"},
		{"AI/ML & Data Science", "TensorFlow, scikit-learn, Pandas, NumPy, Data Analysis"},
		{"Tools & Platforms", "Git, Linux, Docker, Replit, VS Code"},
	},
}

// ResumeFileName is the attachment name offered by the download endpoint.
const ResumeFileName = "Saad_Tahsin_Resume.docx"

// BuildResume serializes the profile into a .docx document and returns its
// bytes. The endpoint never touches the database.
func BuildResume(profile Profile) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	// Header
	doc.AddParagraph().Justification("center").AddText(profile.Name).Size("44").Bold()
	doc.AddParagraph().Justification("center").
		AddText(fmt.Sprintf("%s • %s • %s", profile.Title, profile.Subtitle, profile.Learning)).
		Size("22").Color("666666")
	doc.AddParagraph().Justification("center").
		AddText(fmt.Sprintf("%s • %s", profile.Email, profile.Location)).
		Size("20").Color("444444")
	doc.AddParagraph()

	// Professional summary
	doc.AddParagraph().AddText("Professional Summary").Size("32").Bold()
	doc.AddParagraph().AddText(profile.Tagline)
	doc.AddParagraph().AddText(profile.Bio)
	doc.AddParagraph()

	// Current positions
	doc.AddParagraph().AddText("Current Positions").Size("32").Bold()
	for _, role := range profile.Roles {
		p := doc.AddParagraph()
		p.AddText(role.Title).Size("24").Bold()
		p.AddText(fmt.Sprintf(" - %s", role.Company)).Size("24")
		doc.AddParagraph().AddText(role.Description)
	}
	doc.AddParagraph()

	// Experience
	doc.AddParagraph().AddText("Experience").Size("32").Bold()
	for _, exp := range profile.Experiences {
		p := doc.AddParagraph()
		p.AddText(exp.Role).Bold()
		p.AddText(fmt.Sprintf(" (%s) - %s", exp.Duration, exp.Description))
	}
	doc.AddParagraph()

	// Skills
	doc.AddParagraph().AddText("Technical Skills").Size("32").Bold()
	for _, group := range profile.SkillGroups {
		p := doc.AddParagraph()
		p.AddText(group.Label + ": ").Bold()
		p.AddText(group.Items)
	}
	doc.AddParagraph()

	// Links
	doc.AddParagraph().AddText("Links & Contact").Size("32").Bold()
	p := doc.AddParagraph()
	p.AddText("Email: ").Bold()
	p.AddText(profile.Email).Color("0000FF")
	p = doc.AddParagraph()
	p.AddText("Portfolio: ").Bold()
	p.AddText(profile.PortfolioURL).Color("0000FF")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize resume document: %w", err)
	}
	return buf.Bytes(), nil
}
