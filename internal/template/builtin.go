package template

// Built-in layouts. Classic and minimal ship HTML and LaTeX sources; modern
// is a two-column layout that only exists in HTML (and therefore PDF). DOCX
// is structural and available from every template.

func builtinLayouts() []Layout {
	return []Layout{
		{
			ID:          "classic",
			Name:        "Classic",
			Description: "Traditional serif single-column layout with centered header",
			HTML:        classicHTML,
			LaTeX:       classicLaTeX,
			Builtin:     true,
		},
		{
			ID:          "modern",
			Name:        "Modern",
			Description: "Two-column sans-serif layout with a skills sidebar",
			HTML:        modernHTML,
			Builtin:     true,
		},
		{
			ID:          "minimal",
			Name:        "Minimal",
			Description: "Compact single-column layout optimized for plain parsing",
			HTML:        minimalHTML,
			LaTeX:       minimalLaTeX,
			Builtin:     true,
		},
	}
}

const classicHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Contact.Name}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; color: #1a1a1a; max-width: 52rem; margin: 0 auto; padding: 2rem; font-size: 11pt; line-height: 1.45; }
header { text-align: center; border-bottom: 2px solid #1a1a1a; padding-bottom: .8rem; margin-bottom: 1.2rem; }
h1 { margin: 0; font-size: 22pt; letter-spacing: .05em; }
.contact { margin: .4rem 0 0; font-size: 10pt; color: #444; }
h2 { font-size: 12pt; text-transform: uppercase; letter-spacing: .1em; border-bottom: 1px solid #999; padding-bottom: .15rem; margin: 1.2rem 0 .5rem; }
.entry { margin-bottom: .7rem; }
.entry-head { display: flex; justify-content: space-between; }
.role { font-weight: bold; }
.dates { color: #555; font-size: 10pt; }
ul { margin: .25rem 0 0 1.2rem; padding: 0; }
li { margin-bottom: .15rem; }
.skills p { margin: .15rem 0; }
a { color: inherit; }
</style>
</head>
<body>
<header>
<h1>{{.Contact.Name}}</h1>
<p class="contact">{{.Contact.Email}}{{if .Contact.Phone}} &middot; {{.Contact.Phone}}{{end}}{{if .Contact.Location}} &middot; {{.Contact.Location}}{{end}}{{range .Contact.Links}} &middot; <a href="{{.URL}}">{{.Label}}</a>{{end}}</p>
</header>
{{if .Summary}}<section><h2>Summary</h2><p>{{.Summary}}</p></section>{{end}}
{{if .Experience}}<section><h2>Experience</h2>
{{range .SortedExperience}}<div class="entry">
<div class="entry-head"><span><span class="role">{{.Role}}</span>{{if .Company}}, {{.Company}}{{end}}</span><span class="dates">{{dateRange .StartDate .EndDate}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}</section>{{end}}
{{if .Education}}<section><h2>Education</h2>
{{range .Education}}<div class="entry">
<div class="entry-head"><span><span class="role">{{.Degree}}{{if .Field}}, {{.Field}}{{end}}</span>{{if .Institution}}, {{.Institution}}{{end}}</span><span class="dates">{{dateRange .StartDate .EndDate}}</span></div>
{{if .Notes}}<p>{{.Notes}}</p>{{end}}
</div>
{{end}}</section>{{end}}
{{if .SkillGroups}}<section class="skills"><h2>Skills</h2>
{{range .SkillGroups}}<p><strong>{{.Label}}:</strong> {{join .Skills ", "}}</p>
{{end}}</section>{{end}}
{{if .Projects}}<section><h2>Projects</h2>
{{range .Projects}}<div class="entry">
<div class="entry-head"><span class="role">{{.Name}}</span></div>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}</section>{{end}}
{{if .Certifications}}<section><h2>Certifications</h2>
<ul>{{range .Certifications}}<li>{{.Name}}{{if .Issuer}} &mdash; {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</li>{{end}}</ul>
</section>{{end}}
</body>
</html>
`

const classicLaTeX = `\documentclass[10pt]{article}
\usepackage[margin=0.9in]{geometry}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\pagestyle{empty}
\setlist[itemize]{leftmargin=*,nosep,itemsep=2pt}
\newcommand{\sectionrule}[1]{\vspace{6pt}{\large\scshape #1}\par\hrule\vspace{4pt}}
\begin{document}
\begin{center}
{\LARGE {{escape .Contact.Name}}}\\[4pt]
{{escape .Contact.Email}}{{if .Contact.Phone}} $\cdot$ {{escape .Contact.Phone}}{{end}}{{if .Contact.Location}} $\cdot$ {{escape .Contact.Location}}{{end}}
\end{center}
{{if .Summary}}\sectionrule{Summary}
{{escape .Summary}}
{{end}}{{if .Experience}}\sectionrule{Experience}
{{range .SortedExperience}}\textbf{ {{escape .Role}} }{{if .Company}}, {{escape .Company}}{{end}} \hfill {{escape (dateRange .StartDate .EndDate)}}\\
{{if .Bullets}}\begin{itemize}
{{range .Bullets}}\item {{escape .}}
{{end}}\end{itemize}
{{end}}{{end}}{{end}}{{if .Education}}\sectionrule{Education}
{{range .Education}}\textbf{ {{escape .Degree}} }{{if .Field}}, {{escape .Field}}{{end}}{{if .Institution}}, {{escape .Institution}}{{end}} \hfill {{escape (dateRange .StartDate .EndDate)}}\\
{{end}}{{end}}{{if .SkillGroups}}\sectionrule{Skills}
{{range .SkillGroups}}\textbf{ {{escape .Label}}: } {{escape (join .Skills ", ")}}\\
{{end}}{{end}}{{if .Certifications}}\sectionrule{Certifications}
\begin{itemize}
{{range .Certifications}}\item {{escape .Name}}{{if .Issuer}} --- {{escape .Issuer}}{{end}}
{{end}}\end{itemize}
{{end}}\end{document}
`

const modernHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Contact.Name}}</title>
<style>
body { font-family: "Helvetica Neue", Arial, sans-serif; color: #222; margin: 0; font-size: 10.5pt; line-height: 1.5; }
.page { display: flex; max-width: 58rem; margin: 0 auto; min-height: 100vh; }
aside { background: #15364f; color: #eef3f7; width: 17rem; padding: 2rem 1.4rem; }
aside h1 { font-size: 18pt; margin: 0 0 .3rem; }
aside h2 { font-size: 10pt; text-transform: uppercase; letter-spacing: .12em; border-bottom: 1px solid #46718f; padding-bottom: .2rem; margin: 1.4rem 0 .5rem; }
aside p, aside li { font-size: 9.5pt; }
aside ul { margin: 0; padding-left: 1rem; }
aside a { color: #bcd6e8; }
main { flex: 1; padding: 2rem 2.2rem; }
main h2 { font-size: 11.5pt; text-transform: uppercase; letter-spacing: .1em; color: #15364f; border-bottom: 2px solid #15364f; padding-bottom: .2rem; margin: 1.3rem 0 .6rem; }
.entry { margin-bottom: .8rem; }
.entry-head { display: flex; justify-content: space-between; font-weight: 600; }
.dates { color: #666; font-weight: 400; font-size: 9.5pt; }
ul { margin: .3rem 0 0 1.2rem; padding: 0; }
</style>
</head>
<body>
<div class="page">
<aside>
<h1>{{.Contact.Name}}</h1>
{{if .Contact.Location}}<p>{{.Contact.Location}}</p>{{end}}
<h2>Contact</h2>
<p>{{.Contact.Email}}</p>
{{if .Contact.Phone}}<p>{{.Contact.Phone}}</p>{{end}}
{{range .Contact.Links}}<p><a href="{{.URL}}">{{.Label}}</a></p>{{end}}
{{if .SkillGroups}}<h2>Skills</h2>
{{range .SkillGroups}}<p><strong>{{.Label}}</strong></p><ul>{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
{{end}}{{end}}
{{if .Certifications}}<h2>Certifications</h2>
<ul>{{range .Certifications}}<li>{{.Name}}</li>{{end}}</ul>{{end}}
</aside>
<main>
{{if .Summary}}<h2>Profile</h2><p>{{.Summary}}</p>{{end}}
{{if .Experience}}<h2>Experience</h2>
{{range .SortedExperience}}<div class="entry">
<div class="entry-head"><span>{{.Role}}{{if .Company}} &middot; {{.Company}}{{end}}</span><span class="dates">{{dateRange .StartDate .EndDate}}</span></div>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}{{end}}
{{if .Projects}}<h2>Projects</h2>
{{range .Projects}}<div class="entry">
<div class="entry-head"><span>{{.Name}}</span></div>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}{{end}}
{{if .Education}}<h2>Education</h2>
{{range .Education}}<div class="entry">
<div class="entry-head"><span>{{.Degree}}{{if .Field}}, {{.Field}}{{end}}{{if .Institution}} &middot; {{.Institution}}{{end}}</span><span class="dates">{{dateRange .StartDate .EndDate}}</span></div>
</div>
{{end}}{{end}}
</main>
</div>
</body>
</html>
`

const minimalHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Contact.Name}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; color: #000; max-width: 50rem; margin: 0 auto; padding: 1.6rem; font-size: 10.5pt; line-height: 1.4; }
h1 { font-size: 16pt; margin: 0; }
.contact { margin: .2rem 0 1rem; font-size: 10pt; }
h2 { font-size: 11pt; margin: 1rem 0 .3rem; text-transform: uppercase; }
.entry-head { font-weight: bold; }
.dates { font-weight: normal; }
ul { margin: .2rem 0 .6rem 1.1rem; padding: 0; }
p { margin: .2rem 0; }
</style>
</head>
<body>
<h1>{{.Contact.Name}}</h1>
<p class="contact">{{.Contact.Email}}{{if .Contact.Phone}} | {{.Contact.Phone}}{{end}}{{if .Contact.Location}} | {{.Contact.Location}}{{end}}</p>
{{if .Summary}}<h2>Summary</h2><p>{{.Summary}}</p>{{end}}
{{if .Experience}}<h2>Experience</h2>
{{range .SortedExperience}}<p class="entry-head">{{.Role}}{{if .Company}}, {{.Company}}{{end}} <span class="dates">({{dateRange .StartDate .EndDate}})</span></p>
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}{{end}}
{{if .Education}}<h2>Education</h2>
{{range .Education}}<p>{{.Degree}}{{if .Field}}, {{.Field}}{{end}}{{if .Institution}}, {{.Institution}}{{end}} ({{dateRange .StartDate .EndDate}})</p>
{{end}}{{end}}
{{if .SkillGroups}}<h2>Skills</h2>
{{range .SkillGroups}}<p>{{.Label}}: {{join .Skills ", "}}</p>
{{end}}{{end}}
{{if .Projects}}<h2>Projects</h2>
{{range .Projects}}<p class="entry-head">{{.Name}}</p>{{if .Description}}<p>{{.Description}}</p>{{end}}
{{end}}{{end}}
</body>
</html>
`

const minimalLaTeX = `\documentclass[10pt]{article}
\usepackage[margin=1in]{geometry}
\usepackage{enumitem}
\pagestyle{empty}
\setlist[itemize]{leftmargin=*,nosep}
\begin{document}
\noindent{\Large\bfseries {{escape .Contact.Name}}}\\
{{escape .Contact.Email}}{{if .Contact.Phone}} | {{escape .Contact.Phone}}{{end}}{{if .Contact.Location}} | {{escape .Contact.Location}}{{end}}
{{if .Summary}}

\noindent\textbf{Summary}\\
{{escape .Summary}}
{{end}}{{if .Experience}}

\noindent\textbf{Experience}
{{range .SortedExperience}}

\noindent{{escape .Role}}{{if .Company}}, {{escape .Company}}{{end}} ({{escape (dateRange .StartDate .EndDate)}})
{{if .Bullets}}\begin{itemize}
{{range .Bullets}}\item {{escape .}}
{{end}}\end{itemize}{{end}}
{{end}}{{end}}{{if .Education}}

\noindent\textbf{Education}
{{range .Education}}

\noindent{{escape .Degree}}{{if .Field}}, {{escape .Field}}{{end}}{{if .Institution}}, {{escape .Institution}}{{end}}
{{end}}{{end}}{{if .SkillGroups}}

\noindent\textbf{Skills}
{{range .SkillGroups}}

\noindent{{escape .Label}}: {{escape (join .Skills ", ")}}
{{end}}{{end}}
\end{document}
`
