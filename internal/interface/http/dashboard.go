package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the single-page form that drives the suggest endpoint.
func (h *Handler) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardPage))
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Muhurat Planner</title>
<style>
  body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
  fieldset { margin-bottom: 1rem; border: 1px solid #ccc; }
  label { display: inline-block; min-width: 8rem; margin: 0.2rem 0; }
  input, textarea { margin: 0.2rem 0.6rem 0.2rem 0; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { border: 1px solid #ddd; padding: 0.35rem 0.5rem; text-align: left; }
  th { background: #f4f4f4; }
  #error { color: #b00020; }
</style>
</head>
<body>
<h1>Muhurat Planner</h1>
<form id="suggest-form">
  <fieldset>
    <legend>Date range</legend>
    <label>Start date</label><input type="date" name="startDate" required>
    <label>End date</label><input type="date" name="endDate" required>
    <label>Max results</label><input type="number" name="maxResults" min="1" max="50" value="10">
  </fieldset>
  <fieldset>
    <legend>Location</legend>
    <label>City</label><input name="city" placeholder="Bengaluru">
    <label>State</label><input name="state" placeholder="Karnataka">
    <label>Country</label><input name="country" placeholder="India">
    <br>
    <label>Timezone</label><input name="timezone" placeholder="Asia/Kolkata" required>
  </fieldset>
  <fieldset>
    <legend>Desired qualities</legend>
    <textarea name="qualitiesText" rows="2" cols="70" placeholder="Describe the qualities you wish for your child"></textarea>
    <div id="trait-options"></div>
  </fieldset>
  <button type="submit">Find auspicious times</button>
</form>
<p id="error"></p>
<div id="results"></div>
<script>
fetch('/api/v1/traits').then(function (r) { return r.json(); }).then(function (data) {
  var box = document.getElementById('trait-options');
  (data.traits || []).forEach(function (t) {
    var label = document.createElement('label');
    label.style.minWidth = '0';
    var cb = document.createElement('input');
    cb.type = 'checkbox';
    cb.value = t;
    cb.name = 'trait';
    label.appendChild(cb);
    label.appendChild(document.createTextNode(' ' + t + ' '));
    box.appendChild(label);
  });
});

document.getElementById('suggest-form').addEventListener('submit', function (ev) {
  ev.preventDefault();
  var form = ev.target;
  var selected = Array.prototype.slice.call(form.querySelectorAll('input[name=trait]:checked'))
    .map(function (cb) { return cb.value; });
  var payload = {
    startDate: form.startDate.value,
    endDate: form.endDate.value,
    maxResults: parseInt(form.maxResults.value, 10) || 10,
    qualitiesText: form.qualitiesText.value,
    qualitiesSelected: selected,
    location: {
      city: form.city.value,
      state: form.state.value,
      country: form.country.value,
      timezone: form.timezone.value
    }
  };
  document.getElementById('error').textContent = '';
  fetch('/api/v1/muhurat/suggest', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(payload)
  }).then(function (r) { return r.json().then(function (body) { return { ok: r.ok, body: body }; }); })
    .then(function (res) {
      if (!res.ok) {
        document.getElementById('error').textContent =
          (res.body.error && res.body.error.message) || 'request failed';
        return;
      }
      render(res.body.results || []);
    })
    .catch(function (err) { document.getElementById('error').textContent = String(err); });
});

function render(results) {
  var html = '<table><tr><th>#</th><th>Date</th><th>Time</th><th>Score</th>' +
    '<th>Nakshatra</th><th>Tithi</th><th>Lagna</th><th>Syllables</th></tr>';
  results.forEach(function (r, i) {
    html += '<tr><td>' + (i + 1) + '</td><td>' + r.date + '</td><td>' + r.time +
      '</td><td>' + r.score + '</td><td>' + r.nakshatra + ' (pada ' + r.pada + ')' +
      '</td><td>' + r.tithi + '</td><td>' + r.lagna +
      '</td><td>' + (r.recommendedSyllables || []).join(', ') + '</td></tr>';
  });
  html += '</table>';
  document.getElementById('results').innerHTML = html;
}
</script>
</body>
</html>`
