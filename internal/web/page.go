// Package web renders the Technology Matrix page: one self-contained HTML
// document with inline styles and script, parameterized by the category list
// and the token-gate flag. The page is rendered once at startup and served
// as cached bytes.
package web

import (
	"bytes"
	"html/template"
)

type PageData struct {
	Categories []string
	TokenGate  bool
}

func Render(data PageData) ([]byte, error) {
	tmpl, err := template.New("matrix_page").Parse(pageTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Technology Matrix</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --accent: #0d6efd; --danger: #dc3545;
  --invest: #28a745; --migrate: #0d6efd; --tolerate: #ffc107; --eliminate: #dc3545;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1.25rem; max-width: 1100px; margin: 0 auto; }
body.embed { padding: .5rem; }
body.embed header h1, body.embed header p { display: none; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.4rem; }
header p { color: var(--muted); font-size: .875rem; }
form#entry { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
.grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: .75rem; }
@media (max-width: 700px) { .grid { grid-template-columns: 1fr; } }
label { display: block; font-size: .8125rem; font-weight: 600; margin-bottom: .125rem; }
input, select, textarea { width: 100%; padding: .45rem .5rem; border: 1px solid var(--border); border-radius: 4px; font-size: .875rem; background: var(--bg); color: var(--fg); }
textarea { min-height: 60px; resize: vertical; }
.ratings { display: flex; gap: 1.5rem; margin-top: .75rem; flex-wrap: wrap; }
.rating-group { display: flex; gap: .25rem; }
.rating-group button { padding: .35rem .7rem; border: 1px solid var(--border); background: var(--bg); border-radius: 4px; cursor: pointer; font-size: .875rem; }
.rating-group button.active { background: var(--accent); color: #fff; border-color: var(--accent); }
.pill { display: inline-block; padding: .2rem .65rem; border-radius: 999px; color: #fff; font-size: .8125rem; font-weight: 700; }
.pill-I { background: var(--invest); }
.pill-M { background: var(--migrate); }
.pill-T { background: var(--tolerate); color: #1a1a2e; }
.pill-E { background: var(--eliminate); }
.actions { margin-top: .75rem; display: flex; gap: .5rem; align-items: center; flex-wrap: wrap; }
.actions button { padding: .45rem 1rem; border-radius: 4px; border: 1px solid var(--border); cursor: pointer; font-size: .875rem; }
.actions button[type=submit] { background: var(--accent); color: #fff; border-color: var(--accent); }
#share-row { margin-top: .75rem; }
#share-link { font-size: .8125rem; color: var(--muted); }
#error-box { color: var(--danger); font-size: .875rem; margin: .5rem 0; min-height: 1.2rem; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
th, td { padding: .45rem .55rem; text-align: left; border-bottom: 1px solid var(--border); }
tr.customer-row { cursor: pointer; }
tr.customer-row:hover { background: var(--card-bg); }
.delete-btn { color: var(--danger); background: none; border: none; cursor: pointer; font-size: .8125rem; }
.panel-head { display: flex; justify-content: space-between; align-items: center; margin-bottom: .5rem; gap: .5rem; flex-wrap: wrap; }
.panel-head h2 { font-size: 1.05rem; }
.panel-head select { width: auto; }
.muted { color: var(--muted); }
</style>
</head>
<body>
<header>
  <h1>Technology Matrix</h1>
  <p>Record each customer's current technology solutions and their TIME classification.</p>
</header>

{{if .TokenGate}}
<div id="token-row" style="margin-bottom:1rem">
  <label for="api-token">API token</label>
  <input id="api-token" type="password" autocomplete="off" placeholder="Shared API token">
</div>
{{end}}

<form id="entry">
  <div class="grid">
    <div>
      <label for="customerName">Customer</label>
      <input id="customerName" name="customerName" type="text" autocomplete="off">
    </div>
    <div>
      <label for="category">Category</label>
      <select id="category" name="category">
        <option value="">Select a category</option>
{{range .Categories}}        <option value="{{.}}">{{.}}</option>
{{end}}      </select>
    </div>
    <div>
      <label for="solution">Solution</label>
      <input id="solution" name="solution" type="text" autocomplete="off">
    </div>
    <div>
      <label for="vendor">Vendor</label>
      <input id="vendor" name="vendor" type="text" autocomplete="off">
    </div>
    <div>
      <label for="dateImplemented">Date implemented</label>
      <input id="dateImplemented" name="dateImplemented" type="date">
    </div>
    <div>
      <label for="contractExpiration">Contract expiration</label>
      <input id="contractExpiration" name="contractExpiration" type="date">
    </div>
  </div>
  <div class="ratings">
    <div>
      <label>Technical fit</label>
      <div class="rating-group" id="technicalFit" data-value=""></div>
    </div>
    <div>
      <label>Functional fit</label>
      <div class="rating-group" id="functionalFit" data-value=""></div>
    </div>
    <div>
      <label>Classification</label>
      <span id="preview" class="pill pill-E">&ndash;</span>
    </div>
  </div>
  <div style="margin-top:.75rem">
    <label for="notes">Notes</label>
    <textarea id="notes" name="notes"></textarea>
  </div>
  <div class="actions">
    <button type="submit">Save</button>
    <button type="button" id="reset-btn">Reset</button>
  </div>
  <div id="share-row">
    <label for="share-link">Shareable link</label>
    <input id="share-link" type="text" readonly>
  </div>
</form>

<div id="error-box"></div>

<section id="results">
  <div class="panel-head">
    <h2 id="panel-title">Customers</h2>
    <select id="category-filter" style="display:none">
      <option value="">All categories</option>
{{range .Categories}}      <option value="{{.}}">{{.}}</option>
{{end}}    </select>
  </div>
  <div id="panel-body" class="muted">Loading&hellip;</div>
</section>

<script>
(function () {
  "use strict";

  var API_BASE = "/api";
  var params = new URLSearchParams(window.location.search);
  var lockedCustomer = (params.get("customer") || "").trim();
  var embedMode = params.get("embed") === "1";
  var currentCustomer = lockedCustomer;

  if (embedMode) {
    document.body.classList.add("embed");
  }

  // Same rule as the backend: >=4 is High on both axes. NaN is never >=4,
  // so non-numeric input lands in Eliminate.
  function classify(technicalFit, functionalFit) {
    var techHigh = Number(technicalFit) >= 4;
    var funcHigh = Number(functionalFit) >= 4;
    if (techHigh && funcHigh) return { code: "I", label: "Invest" };
    if (!techHigh && funcHigh) return { code: "M", label: "Migrate" };
    if (techHigh && !funcHigh) return { code: "T", label: "Tolerate" };
    return { code: "E", label: "Eliminate" };
  }

  function el(id) { return document.getElementById(id); }

  function showError(message) {
    el("error-box").textContent = message || "";
  }

  function apiHeaders() {
    var headers = { "Content-Type": "application/json" };
    var tokenInput = el("api-token");
    if (tokenInput && tokenInput.value) {
      headers["X-Api-Token"] = tokenInput.value;
      try { window.localStorage.setItem("matrix_api_token", tokenInput.value); } catch (e) {}
    }
    return headers;
  }

  function callAPI(method, path, body) {
    return fetch(API_BASE + path, {
      method: method,
      headers: apiHeaders(),
      body: body ? JSON.stringify(body) : undefined
    }).then(function (resp) {
      return resp.text().then(function (text) {
        var payload = null;
        try { payload = text ? JSON.parse(text) : null; } catch (e) { payload = text; }
        if (!resp.ok) {
          var detail = payload && payload.error !== undefined ? payload.error : payload;
          if (detail && typeof detail === "object") detail = JSON.stringify(detail);
          throw new Error(detail || ("request failed (" + resp.status + ")"));
        }
        return payload;
      });
    });
  }

  function buildRatingGroup(id) {
    var group = el(id);
    for (var i = 1; i <= 5; i++) {
      (function (value) {
        var btn = document.createElement("button");
        btn.type = "button";
        btn.textContent = String(value);
        btn.addEventListener("click", function () {
          group.dataset.value = String(value);
          var buttons = group.querySelectorAll("button");
          for (var j = 0; j < buttons.length; j++) buttons[j].classList.remove("active");
          btn.classList.add("active");
          updatePreview();
        });
        group.appendChild(btn);
      })(i);
    }
  }

  function updatePreview() {
    var result = classify(el("technicalFit").dataset.value, el("functionalFit").dataset.value);
    var preview = el("preview");
    preview.textContent = result.label;
    preview.className = "pill pill-" + result.code;
  }

  function updateShareLink() {
    var name = el("customerName").value.trim();
    var link = window.location.origin + window.location.pathname;
    if (name) link += "?customer=" + encodeURIComponent(name);
    el("share-link").value = link;
  }

  function escapeHTML(value) {
    var div = document.createElement("div");
    div.textContent = value == null ? "" : String(value);
    return div.innerHTML;
  }

  function renderCustomers(customers) {
    el("panel-title").textContent = "Customers";
    el("category-filter").style.display = "none";
    if (!customers.length) {
      el("panel-body").innerHTML = '<span class="muted">No records yet.</span>';
      return;
    }
    var html = "<table><thead><tr><th>Customer</th><th>Records</th></tr></thead><tbody>";
    customers.forEach(function (c) {
      html += '<tr class="customer-row" data-name="' + escapeHTML(c.customerName) + '">' +
        "<td>" + escapeHTML(c.customerName) + "</td><td>" + c.count + "</td></tr>";
    });
    html += "</tbody></table>";
    el("panel-body").innerHTML = html;
    var rows = el("panel-body").querySelectorAll("tr.customer-row");
    for (var i = 0; i < rows.length; i++) {
      rows[i].addEventListener("click", function () {
        currentCustomer = this.dataset.name;
        el("customerName").value = currentCustomer;
        updateShareLink();
        refresh();
      });
    }
  }

  function renderItems(items) {
    el("panel-title").textContent = currentCustomer;
    el("category-filter").style.display = "";
    if (!items.length) {
      el("panel-body").innerHTML = '<span class="muted">No records for this customer.</span>';
      return;
    }
    var html = "<table><thead><tr><th>TIME</th><th>Category</th><th>Solution</th><th>Vendor</th>" +
      "<th>Implemented</th><th>Expires</th><th>Notes</th><th></th></tr></thead><tbody>";
    items.forEach(function (item) {
      html += "<tr>" +
        '<td><span class="pill pill-' + escapeHTML(item.timeCode) + '">' + escapeHTML(item.timeLabel) + "</span></td>" +
        "<td>" + escapeHTML(item.category) + "</td>" +
        "<td>" + escapeHTML(item.solution) + "</td>" +
        "<td>" + escapeHTML(item.vendor) + "</td>" +
        "<td>" + escapeHTML(item.dateImplemented) + "</td>" +
        "<td>" + escapeHTML(item.contractExpiration) + "</td>" +
        "<td>" + escapeHTML(item.notes) + "</td>" +
        '<td><button class="delete-btn" data-id="' + escapeHTML(item._id) + '">Delete</button></td>' +
        "</tr>";
    });
    html += "</tbody></table>";
    el("panel-body").innerHTML = html;
    var buttons = el("panel-body").querySelectorAll("button.delete-btn");
    for (var i = 0; i < buttons.length; i++) {
      buttons[i].addEventListener("click", function () {
        var id = this.dataset.id;
        if (!window.confirm("Delete this record?")) return;
        callAPI("DELETE", "/items/" + encodeURIComponent(id)).then(function () {
          showError("");
          refresh();
        }).catch(function (err) {
          showError(err.message);
        });
      });
    }
  }

  function refresh() {
    showError("");
    if (!currentCustomer) {
      callAPI("GET", "/customers").then(function (payload) {
        renderCustomers(payload.customers || []);
      }).catch(function (err) {
        showError(err.message);
        el("panel-body").textContent = "";
      });
      return;
    }
    var path = "/items?customerName=" + encodeURIComponent(currentCustomer);
    var category = el("category-filter").value;
    if (category) path += "&category=" + encodeURIComponent(category);
    callAPI("GET", path).then(function (payload) {
      renderItems(payload.items || []);
    }).catch(function (err) {
      showError(err.message);
      el("panel-body").textContent = "";
    });
  }

  function resetForm() {
    el("entry").reset();
    if (lockedCustomer) el("customerName").value = lockedCustomer;
    ["technicalFit", "functionalFit"].forEach(function (id) {
      el(id).dataset.value = "";
      var buttons = el(id).querySelectorAll("button");
      for (var i = 0; i < buttons.length; i++) buttons[i].classList.remove("active");
    });
    updatePreview();
    updateShareLink();
  }

  el("entry").addEventListener("submit", function (event) {
    event.preventDefault();
    var body = {
      customerName: el("customerName").value,
      category: el("category").value,
      solution: el("solution").value,
      vendor: el("vendor").value,
      notes: el("notes").value,
      technicalFit: el("technicalFit").dataset.value,
      functionalFit: el("functionalFit").dataset.value,
      dateImplemented: el("dateImplemented").value,
      contractExpiration: el("contractExpiration").value
    };
    callAPI("POST", "/items", body).then(function () {
      currentCustomer = el("customerName").value.trim();
      resetForm();
      refresh();
    }).catch(function (err) {
      showError(err.message);
    });
  });

  el("reset-btn").addEventListener("click", resetForm);
  el("customerName").addEventListener("input", function () {
    updateShareLink();
    if (!lockedCustomer) currentCustomer = el("customerName").value.trim();
  });
  el("category-filter").addEventListener("change", refresh);

  buildRatingGroup("technicalFit");
  buildRatingGroup("functionalFit");

  if (lockedCustomer) {
    el("customerName").value = lockedCustomer;
    el("customerName").readOnly = true;
  }
  var tokenInput = el("api-token");
  if (tokenInput) {
    try {
      var saved = window.localStorage.getItem("matrix_api_token");
      if (saved) tokenInput.value = saved;
    } catch (e) {}
  }

  updatePreview();
  updateShareLink();
  refresh();
})();
</script>
</body>
</html>
`
