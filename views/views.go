package views

import "html/template"

// Templates parses the application's own pages (auth, dashboard,
// builder). Public portfolio pages are rendered by the templates package
// instead; these are only the logged-in chrome around them.
func Templates() *template.Template {
	t := template.New("views")
	for name, body := range pages {
		template.Must(t.New(name).Parse(body))
	}
	return t
}

var pages = map[string]string{
	"home.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.title}}</title></head>
<body>
<h1>Folio</h1>
<p>Build a portfolio from a reusable profile and publish it at a public URL.</p>
<p><a href="/login">Log in</a> or <a href="/register">create an account</a>.</p>
</body>
</html>`,

	"login.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Log in - Folio</title></head>
<body>
<h1>Log in</h1>
{{if .error}}<p style="color:#b91c1c">{{.error}}</p>{{end}}
<form method="POST" action="/login">
<label>Email <input type="email" name="email" value="{{.email}}" required></label><br>
<label>Password <input type="password" name="password" required></label><br>
<button type="submit">Log in</button>
</form>
<p><a href="/register">Create an account</a></p>
</body>
</html>`,

	"register.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Register - Folio</title></head>
<body>
<h1>Create account</h1>
{{if .error}}<p style="color:#b91c1c">{{.error}}</p>{{end}}
<form method="POST" action="/register">
<label>Name <input type="text" name="name" value="{{.name}}" required></label><br>
<label>Email <input type="email" name="email" value="{{.email}}" required></label><br>
<label>Password <input type="password" name="password" required></label><br>
<button type="submit">Register</button>
</form>
<p><a href="/login">Log in instead</a></p>
</body>
</html>`,

	"dashboard.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Dashboard - Folio</title></head>
<body>
<h1>Your portfolios</h1>
<p><a href="/create">New portfolio</a> &middot; <a href="/profiles">Profiles</a> &middot; <a href="/logout">Log out</a></p>
<ul>
{{range .portfolios}}
<li>
<a href="/builder/{{.ID}}">{{.Title}}</a>
{{if .IsPublished}}&mdash; <a href="/p/{{.Slug}}">/p/{{.Slug}}</a> ({{.VisitCount}} visits){{else}}&mdash; draft{{end}}
</li>
{{else}}
<li>No portfolios yet.</li>
{{end}}
</ul>
</body>
</html>`,

	"profiles.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Profiles - Folio</title></head>
<body>
<h1>Your profiles</h1>
<p><a href="/dashboard">Dashboard</a></p>
<ul>
{{range .profiles}}
<li>{{.Name}}{{if .Description}} &mdash; {{.Description}}{{end}}</li>
{{else}}
<li>No profiles yet.</li>
{{end}}
</ul>
</body>
</html>`,

	"create.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>New portfolio - Folio</title></head>
<body>
<h1>New portfolio</h1>
<p>Pick a profile and a template; the portfolio starts from the profile's content.</p>
<div id="profiles">
{{range .profiles}}<label><input type="radio" name="profile" value="{{.ID}}"> {{.Name}}</label><br>{{end}}
</div>
<div id="templates">
{{range .templates}}<label><input type="radio" name="template" value="{{.ID}}"> {{.Name}} &mdash; {{.Description}}</label><br>{{end}}
</div>
<button onclick="createPortfolio()">Create</button>
<script>
async function createPortfolio() {
	const profile = document.querySelector('input[name="profile"]:checked');
	const tpl = document.querySelector('input[name="template"]:checked');
	if (!profile || !tpl) { alert("Pick a profile and a template"); return; }
	const res = await fetch("/api/portfolios", {
		method: "POST",
		headers: {"Content-Type": "application/json"},
		body: JSON.stringify({profileId: parseInt(profile.value, 10), templateId: tpl.value})
	});
	if (!res.ok) { alert("Failed to create portfolio"); return; }
	const p = await res.json();
	window.location = "/builder/" + p.id;
}
</script>
</body>
</html>`,

	"builder.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Builder - {{.portfolio.Title}}</title></head>
<body>
<p><a href="/dashboard">Back</a> <span id="status"></span>
{{if eq .contentSource "snapshot"}}<em>(showing stored snapshot; no linked profile resolves)</em>{{end}}</p>
<label>Title <input id="title" value="{{.portfolio.Title}}"></label><br>
<label>Description <input id="description" value="{{.portfolio.Description}}"></label><br>
<label>Name <input id="pi-name" data-path="personalInfo.name" value="{{.content.PersonalInfo.Name}}"></label><br>
<label>Headline <input id="pi-title" data-path="personalInfo.title" value="{{.content.PersonalInfo.Title}}"></label><br>
<label>Bio <textarea id="pi-bio" data-path="personalInfo.bio">{{.content.PersonalInfo.Bio}}</textarea></label><br>
<label>Template
<select id="template">
{{range .templates}}<option value="{{.ID}}" {{if eq (printf "%s" .ID) $.portfolio.TemplateID}}selected{{end}}>{{.Name}}</option>{{end}}
</select>
</label>
<iframe id="preview" {{if .portfolio.IsPublished}}src="/p/{{.portfolio.Slug}}"{{end}} style="width:100%;height:480px"></iframe>
<script>
// Debounced auto-save: edits land locally at once, one PUT per quiet second.
const id = {{.portfolio.ID}};
let content = {{.content}};
let timer = null;
const statusEl = document.getElementById("status");

function scheduleSave() {
	statusEl.textContent = "…";
	if (timer) clearTimeout(timer);
	timer = setTimeout(saveNow, 1000);
}

async function saveNow() {
	statusEl.textContent = "saving";
	try {
		const res = await fetch("/api/portfolios/" + id + "/autosave", {
			method: "POST",
			headers: {"Content-Type": "application/json"},
			body: JSON.stringify({
				content: content,
				title: document.getElementById("title").value,
				description: document.getElementById("description").value
			})
		});
		statusEl.textContent = res.ok ? "saved" : "unsaved changes";
	} catch (e) {
		console.error("save failed", e);
		statusEl.textContent = "unsaved changes";
	}
}

function setPath(path, value) {
	const parts = path.split(".");
	let node = content;
	for (let i = 0; i < parts.length - 1; i++) node = node[parts[i]];
	node[parts[parts.length - 1]] = value;
}

document.querySelectorAll("[data-path]").forEach(function (el) {
	el.addEventListener("input", function () {
		setPath(el.dataset.path, el.value);
		scheduleSave();
	});
});
document.getElementById("title").addEventListener("input", scheduleSave);
document.getElementById("description").addEventListener("input", scheduleSave);

// Template switches save immediately, outside the debounce cycle.
document.getElementById("template").addEventListener("change", async function () {
	const res = await fetch("/api/portfolios/" + id, {
		method: "PUT",
		headers: {"Content-Type": "application/json"},
		body: JSON.stringify({templateId: this.value})
	});
	if (!res.ok) { alert("Failed to change template. Please try again."); return; }
	const preview = document.getElementById("preview");
	if (preview.src) preview.src = preview.src; // full remount
});
</script>
</body>
</html>`,

	"error.html": `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Error - Folio</title></head>
<body>
<h1>Something went wrong</h1>
<p>{{.error}}</p>
<p><a href="/dashboard">Back to dashboard</a></p>
</body>
</html>`,
}
