package web

// indexPage is the whole client: a canvas, a websocket, and a cell
// painter keyed to the grid.State numbering.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>gridpath</title>
<style>
  body { font-family: monospace; background: #222; color: #ddd; margin: 1rem; }
  canvas { border: 1px solid #555; image-rendering: pixelated; }
  #bar { margin-bottom: .5rem; }
  button { font-family: inherit; }
</style>
</head>
<body>
<div id="bar">
  <button onclick="run('bfs')">BFS</button>
  <button onclick="run('dfs')">DFS</button>
  <button onclick="run('astar')">A*</button>
  <span id="status"></span>
</div>
<canvas id="board" width="600" height="600"></canvas>
<script>
// Palette indexed by grid.State: Free, Obstacle, Start, End, Frontier,
// Visited, Path.
const colors = ["#ffffff", "#000000", "#66ccff", "#6666ff",
                "#00ff00", "#ff0000", "#ffc0cb"];
const canvas = document.getElementById("board");
const ctx = canvas.getContext("2d");
const status = document.getElementById("status");
let sock = null;

function run(algo) {
  if (sock) sock.close();
  status.textContent = algo + ": running...";
  const proto = location.protocol === "https:" ? "wss:" : "ws:";
  sock = new WebSocket(proto + "//" + location.host + "/ws?algo=" + algo);
  sock.onmessage = (ev) => render(JSON.parse(ev.data), algo);
  sock.onerror = () => { status.textContent = algo + ": connection error"; };
}

function render(frame, algo) {
  const cw = canvas.width / frame.cols, ch = canvas.height / frame.rows;
  for (let r = 0; r < frame.rows; r++) {
    for (let c = 0; c < frame.cols; c++) {
      ctx.fillStyle = colors[frame.cells[r][c]] || "#ff00ff";
      ctx.fillRect(c * cw, r * ch, cw - 0.5, ch - 0.5);
    }
  }
  if (frame.done) {
    status.textContent = algo + ": " + frame.outcome +
      (frame.path ? " (path length " + frame.path.length + ")" : "");
  }
}
</script>
</body>
</html>
`
