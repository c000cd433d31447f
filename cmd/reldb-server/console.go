package main

// consoleHTML is the browser console served at /.
const consoleHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>RelDB Console</title>
<style>
  body { font-family: monospace; background: #1e1e1e; color: #d4d4d4; margin: 0; padding: 20px; }
  h1 { color: #4ec9b0; font-size: 18px; }
  #input { width: 100%; box-sizing: border-box; background: #252526; color: #d4d4d4;
           border: 1px solid #3c3c3c; padding: 8px; font-family: monospace; font-size: 14px; }
  #output { white-space: pre-wrap; margin-top: 12px; }
  .error { color: #f48771; }
  .message { color: #4ec9b0; }
  table { border-collapse: collapse; margin: 8px 0; }
  th, td { border: 1px solid #3c3c3c; padding: 4px 10px; text-align: left; }
  th { color: #dcdcaa; }
</style>
</head>
<body>
<h1>RelDB Console</h1>
<input id="input" placeholder="Type a statement and press Enter" autofocus>
<div id="output"></div>
<script>
const input = document.getElementById('input');
const output = document.getElementById('output');

input.addEventListener('keydown', async (e) => {
  if (e.key !== 'Enter' || !input.value.trim()) return;
  const query = input.value;
  input.value = '';

  const resp = await fetch('/api/query', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({query})
  });
  const result = await resp.json();

  const block = document.createElement('div');
  block.innerHTML = '<div>&gt; ' + escapeHtml(query) + '</div>';

  if (result.error) {
    block.innerHTML += '<div class="error">Error: ' + escapeHtml(result.error) + '</div>';
  } else if (result.columns) {
    block.appendChild(renderTable(result.columns, result.data || []));
    block.innerHTML += '<div class="message">' + (result.count || 0) + ' row(s)</div>';
  } else {
    block.innerHTML += '<div class="message">' + escapeHtml(result.message || 'OK') + '</div>';
  }

  output.prepend(block);
});

function renderTable(columns, data) {
  const table = document.createElement('table');
  const head = table.insertRow();
  for (const c of columns) {
    const th = document.createElement('th');
    th.textContent = c;
    head.appendChild(th);
  }
  for (const row of data) {
    const tr = table.insertRow();
    for (const c of columns) {
      const v = row[c];
      tr.insertCell().textContent = v === null || v === undefined ? 'NULL' : String(v);
    }
  }
  return table;
}

function escapeHtml(s) {
  const div = document.createElement('div');
  div.textContent = s;
  return div.innerHTML;
}
</script>
</body>
</html>
`
