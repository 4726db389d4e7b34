package templates

// The five page designs. Each one is a complete standalone document fed
// the resolved content; they differ in structure and styling, not in the
// data they can show.

const minimalHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Content.PersonalInfo.Name}} - Portfolio</title>
<meta name="description" content="{{.Content.PersonalInfo.Bio}}">
<style>
body{font-family:Georgia,serif;max-width:680px;margin:0 auto;padding:2rem;color:#222;line-height:1.6}
h1{font-size:1.8rem;margin-bottom:0}
h2{border-bottom:1px solid #ddd;padding-bottom:.3rem;margin-top:2rem}
.subtitle{color:#666}
.avatar{width:96px;height:96px;border-radius:50%;object-fit:cover}
ul.plain{list-style:none;padding:0}
.meta{color:#888;font-size:.9rem}
a{color:#1a5276}
</style>
</head>
<body>
{{with .Content.PersonalInfo}}
{{if .ProfilePhoto}}<img class="avatar" src="{{.ProfilePhoto}}" alt="{{.Name}}">{{end}}
<h1>{{.Name}}</h1>
<p class="subtitle">{{.Title}}</p>
<div>{{markdown .Bio}}</div>
<p class="meta">{{.Email}}{{if .PhoneNo}} &middot; {{.PhoneNo}}{{end}}</p>
{{if .Socials}}<p>{{range .Socials}}<a href="{{.Link}}">{{.Platform}}</a> {{end}}</p>{{end}}
{{end}}

{{if .Content.Projects}}
<h2>Projects</h2>
<ul class="plain">
{{range .Content.Projects}}
<li>
<strong>{{.Title}}</strong> &mdash; {{.Description}}
{{if .Link}}<a href="{{.Link}}">site</a>{{end}}
{{if .GithubLink}}<a href="{{.GithubLink}}">code</a>{{end}}
</li>
{{end}}
</ul>
{{end}}

{{if .Content.Skills.Names}}
<h2>Skills</h2>
{{if .Content.Skills.IsCategorized}}
{{range .Content.Skills.Groups}}<p><strong>{{.Title}}:</strong> {{range .Skills}}{{.}} {{end}}</p>{{end}}
{{else}}
<p>{{range .Content.Skills.Items}}{{.Name}} {{end}}</p>
{{end}}
{{end}}

{{if .Content.Experience}}
<h2>Experience</h2>
<ul class="plain">
{{range .Content.Experience}}
<li>
<strong>{{.Position}}</strong>, {{.Company}}{{if .Location}} ({{.Location}}){{end}}
<div class="meta">{{.StartDate}} &ndash; {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</div>
{{if .Description}}<div>{{.Description}}</div>{{end}}
</li>
{{end}}
</ul>
{{end}}

{{if .Content.Certificates}}
<h2>Certificates</h2>
<ul class="plain">
{{range .Content.Certificates}}
<li>{{.Name}} &mdash; {{.Provider}} ({{.IssuedOn}}){{if .CertificateURL}} <a href="{{.CertificateURL}}">verify</a>{{end}}</li>
{{end}}
</ul>
{{end}}
</body>
</html>`

const modernHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Content.PersonalInfo.Name}} - Portfolio</title>
<meta name="description" content="{{.Content.PersonalInfo.Bio}}">
<style>
body{font-family:'Segoe UI',sans-serif;background:#0b0f19;color:#e5e7eb;margin:0;line-height:1.6}
.wrap{max-width:860px;margin:0 auto;padding:3rem 1.5rem}
.hero{background:linear-gradient(135deg,#312e81,#6d28d9);border-radius:16px;padding:2.5rem;text-align:center}
.avatar{width:120px;height:120px;border-radius:50%;object-fit:cover;border:3px solid #a78bfa}
h1{margin:.5rem 0 0}
h2{color:#a78bfa;margin-top:2.5rem}
.card{background:#151b2c;border-radius:12px;padding:1.25rem;margin:.75rem 0}
.tag{display:inline-block;background:#312e81;border-radius:999px;padding:.2rem .8rem;margin:.15rem;font-size:.85rem}
.muted{color:#9ca3af;font-size:.9rem}
a{color:#a78bfa}
</style>
</head>
<body>
<div class="wrap">
{{with .Content.PersonalInfo}}
<div class="hero">
{{if .ProfilePhoto}}<img class="avatar" src="{{.ProfilePhoto}}" alt="{{.Name}}">{{end}}
<h1>{{.Name}}</h1>
<p>{{.Title}}</p>
<div>{{markdown .Bio}}</div>
<p class="muted">{{.Email}}{{if .PhoneNo}} | {{.PhoneNo}}{{end}}</p>
{{range .Socials}}<a href="{{.Link}}">{{.Platform}}</a> {{end}}
</div>
{{end}}

{{if .Content.Projects}}
<h2>Projects</h2>
{{range .Content.Projects}}
<div class="card">
<strong>{{.Title}}</strong>
<p>{{.Description}}</p>
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" style="max-width:100%;border-radius:8px">{{end}}
{{if .Link}}<a href="{{.Link}}">Live</a> {{end}}{{if .GithubLink}}<a href="{{.GithubLink}}">GitHub</a>{{end}}
</div>
{{end}}
{{end}}

{{if .Content.Skills.Names}}
<h2>Skills</h2>
{{if .Content.Skills.IsCategorized}}
{{range .Content.Skills.Groups}}
<div class="card"><strong>{{.Title}}</strong><div>{{range .Skills}}<span class="tag">{{.}}</span>{{end}}</div></div>
{{end}}
{{else}}
<div>{{range .Content.Skills.Items}}<span class="tag">{{.Name}}</span>{{end}}</div>
{{end}}
{{end}}

{{if .Content.Experience}}
<h2>Experience</h2>
{{range .Content.Experience}}
<div class="card">
<strong>{{.Position}}</strong> @ {{.Company}}
<div class="muted">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}{{if .Location}} | {{.Location}}{{end}}</div>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}
{{end}}

{{if .Content.Certificates}}
<h2>Certificates</h2>
{{range .Content.Certificates}}
<div class="card">{{.Name}} <span class="muted">{{.Provider}}, {{.IssuedOn}}</span>{{if .CertificateURL}} <a href="{{.CertificateURL}}">verify</a>{{end}}</div>
{{end}}
{{end}}
</div>
</body>
</html>`

const creativeHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Content.PersonalInfo.Name}} - Portfolio</title>
<meta name="description" content="{{.Content.PersonalInfo.Bio}}">
<style>
body{font-family:'Trebuchet MS',sans-serif;margin:0;background:#fff7ed;color:#431407;line-height:1.6}
header{background:linear-gradient(120deg,#f97316,#db2777,#7c3aed);color:#fff;padding:4rem 1.5rem;text-align:center}
.avatar{width:130px;height:130px;border-radius:50%;object-fit:cover;border:4px solid #fff}
main{max-width:900px;margin:0 auto;padding:2rem 1.5rem}
h2{font-size:2rem;color:#db2777}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(240px,1fr));gap:1rem}
.tile{background:#fff;border-radius:14px;padding:1.25rem;box-shadow:0 4px 14px rgba(219,39,119,.15)}
.pill{display:inline-block;background:#fde68a;border-radius:999px;padding:.25rem .9rem;margin:.2rem;font-weight:bold}
a{color:#7c3aed}
</style>
</head>
<body>
{{with .Content.PersonalInfo}}
<header>
{{if .ProfilePhoto}}<img class="avatar" src="{{.ProfilePhoto}}" alt="{{.Name}}">{{end}}
<h1>{{.Name}}</h1>
<p>{{.Title}}</p>
{{range .Socials}}<a style="color:#fff" href="{{.Link}}">{{.Platform}}</a> {{end}}
</header>
{{end}}
<main>
<section>{{markdown .Content.PersonalInfo.Bio}}</section>

{{if .Content.Projects}}
<h2>Things I Made</h2>
<div class="grid">
{{range .Content.Projects}}
<div class="tile">
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" style="width:100%;border-radius:10px">{{end}}
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
{{if .Link}}<a href="{{.Link}}">Visit</a> {{end}}{{if .GithubLink}}<a href="{{.GithubLink}}">Code</a>{{end}}
</div>
{{end}}
</div>
{{end}}

{{if .Content.Skills.Names}}
<h2>What I Do</h2>
{{if .Content.Skills.IsCategorized}}
{{range .Content.Skills.Groups}}<h3>{{.Title}}</h3><div>{{range .Skills}}<span class="pill">{{.}}</span>{{end}}</div>{{end}}
{{else}}
<div>{{range .Content.Skills.Items}}<span class="pill">{{.Name}}</span>{{end}}</div>
{{end}}
{{end}}

{{if .Content.Experience}}
<h2>Where I've Been</h2>
{{range .Content.Experience}}
<div class="tile" style="margin-bottom:1rem">
<h3>{{.Position}} &middot; {{.Company}}</h3>
<p>{{.StartDate}} - {{if .Current}}now{{else}}{{.EndDate}}{{end}}{{if .Location}}, {{.Location}}{{end}}</p>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}
{{end}}

{{if .Content.Certificates}}
<h2>Badges</h2>
{{range .Content.Certificates}}
<div class="tile" style="margin-bottom:1rem">{{.Name}} &mdash; {{.Provider}} ({{.IssuedOn}})</div>
{{end}}
{{end}}

<p>Say hi: <a href="mailto:{{.Content.PersonalInfo.Email}}">{{.Content.PersonalInfo.Email}}</a></p>
</main>
</body>
</html>`

const corporateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Content.PersonalInfo.Name}} - Portfolio</title>
<meta name="description" content="{{.Content.PersonalInfo.Bio}}">
<style>
body{font-family:Arial,Helvetica,sans-serif;margin:0;color:#1f2937;line-height:1.6}
.banner{background:#1e3a5f;color:#fff;padding:2.5rem 1.5rem}
.inner{max-width:880px;margin:0 auto}
.avatar{width:90px;height:90px;border-radius:8px;object-fit:cover;float:right}
h2{color:#1e3a5f;border-left:4px solid #1e3a5f;padding-left:.6rem;margin-top:2rem}
.row{border-bottom:1px solid #e5e7eb;padding:1rem 0}
.muted{color:#6b7280;font-size:.9rem}
a{color:#1e3a5f}
</style>
</head>
<body>
{{with .Content.PersonalInfo}}
<div class="banner"><div class="inner">
{{if .ProfilePhoto}}<img class="avatar" src="{{.ProfilePhoto}}" alt="{{.Name}}">{{end}}
<h1>{{.Name}}</h1>
<p>{{.Title}}</p>
<p>{{.Email}}{{if .PhoneNo}} &bull; {{.PhoneNo}}{{end}}
{{range .Socials}} &bull; <a style="color:#93c5fd" href="{{.Link}}">{{.Platform}}</a>{{end}}</p>
</div></div>
{{end}}
<div class="inner">
<h2>Profile</h2>
{{markdown .Content.PersonalInfo.Bio}}

{{if .Content.Experience}}
<h2>Professional Experience</h2>
{{range .Content.Experience}}
<div class="row">
<strong>{{.Position}}</strong>, {{.Company}}
<span class="muted">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}{{if .Location}} &bull; {{.Location}}{{end}}</span>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}
{{end}}

{{if .Content.Projects}}
<h2>Key Projects</h2>
{{range .Content.Projects}}
<div class="row">
<strong>{{.Title}}</strong>
<p>{{.Description}}</p>
{{if .Link}}<a href="{{.Link}}">Reference</a>{{end}}
</div>
{{end}}
{{end}}

{{if .Content.Skills.Names}}
<h2>Competencies</h2>
{{if .Content.Skills.IsCategorized}}
{{range .Content.Skills.Groups}}<p><strong>{{.Title}}:</strong> {{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}
{{else}}
<p>{{range $i, $s := .Content.Skills.Items}}{{if $i}}, {{end}}{{$s.Name}}{{end}}</p>
{{end}}
{{end}}

{{if .Content.Certificates}}
<h2>Certifications</h2>
{{range .Content.Certificates}}
<div class="row">{{.Name}}, {{.Provider}} <span class="muted">{{.IssuedOn}}{{if .CertificateID}} &bull; ID {{.CertificateID}}{{end}}</span></div>
{{end}}
{{end}}
</div>
</body>
</html>`

const resumeHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Content.PersonalInfo.Name}} - Resume</title>
<meta name="description" content="{{.Content.PersonalInfo.Bio}}">
<style>
body{font-family:'Times New Roman',serif;max-width:760px;margin:0 auto;padding:2rem;color:#000;line-height:1.45}
h1{text-align:center;margin-bottom:0;text-transform:uppercase;letter-spacing:2px}
.contact{text-align:center;font-size:.95rem;margin-top:.25rem}
h2{text-transform:uppercase;font-size:1rem;border-bottom:2px solid #000;letter-spacing:1px;margin-top:1.6rem}
.entry{margin:.6rem 0}
.dates{float:right;font-style:italic}
</style>
</head>
<body>
{{with .Content.PersonalInfo}}
<h1>{{.Name}}</h1>
<p class="contact">{{.Title}}<br>
{{.Email}}{{if .PhoneNo}} | {{.PhoneNo}}{{end}}{{range .Socials}} | <a href="{{.Link}}">{{.Platform}}</a>{{end}}</p>
{{end}}

<h2>Summary</h2>
{{markdown .Content.PersonalInfo.Bio}}

{{if .Content.Experience}}
<h2>Experience</h2>
{{range .Content.Experience}}
<div class="entry">
<span class="dates">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</span>
<strong>{{.Position}}</strong>, {{.Company}}{{if .Location}}, {{.Location}}{{end}}
{{if .Description}}<div>{{.Description}}</div>{{end}}
</div>
{{end}}
{{end}}

{{if .Content.Projects}}
<h2>Projects</h2>
{{range .Content.Projects}}
<div class="entry"><strong>{{.Title}}</strong>: {{.Description}}{{if .GithubLink}} (<a href="{{.GithubLink}}">{{.GithubLink}}</a>){{end}}</div>
{{end}}
{{end}}

{{if .Content.Skills.Names}}
<h2>Skills</h2>
{{if .Content.Skills.IsCategorized}}
{{range .Content.Skills.Groups}}<div class="entry"><strong>{{.Title}}</strong>: {{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</div>{{end}}
{{else}}
<div class="entry">{{range $i, $s := .Content.Skills.Items}}{{if $i}}, {{end}}{{$s.Name}}{{end}}</div>
{{end}}
{{end}}

{{if .Content.Certificates}}
<h2>Certifications</h2>
{{range .Content.Certificates}}
<div class="entry">{{.Name}}, {{.Provider}}, {{.IssuedOn}}</div>
{{end}}
{{end}}
</body>
</html>`
