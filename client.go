package main

// Inline HTML client for the Jeopardy game. The server is authoritative:
// the client renders whatever screen the latest state message names, and
// host controls simply emit typed actions over the websocket.
const gameClientHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Triviabox Jeopardy</title>
<style>
  body { font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 2rem; background: #06075c; color: #fff; }
  h1 { margin-bottom: 0.5rem; color: #ffcc00; }
  h2 { color: #ffcc00; }
  #status { margin-bottom: 1rem; font-size: 0.9rem; color: #aab; }
  button { background: #2832c2; color: #fff; border: 1px solid #ffcc00; border-radius: 6px; padding: 0.5rem 1rem; margin: 0.2rem; cursor: pointer; font-size: 1rem; }
  button:disabled { opacity: 0.4; cursor: default; }
  input, textarea { padding: 0.4rem; border-radius: 4px; border: 1px solid #888; margin: 0.2rem; width: 100%; max-width: 30rem; box-sizing: border-box; }
  .board { display: grid; grid-template-columns: repeat(5, 1fr); gap: 0.4rem; max-width: 60rem; }
  .cat { background: #2832c2; padding: 0.6rem 0.2rem; text-align: center; font-weight: bold; min-height: 3rem; }
  .cell { background: #2832c2; color: #ffcc00; font-size: 1.4rem; font-weight: bold; padding: 0.8rem 0; }
  .cell.used { color: #667; background: #141a66; }
  .scores { display: flex; gap: 0.8rem; flex-wrap: wrap; margin: 1rem 0; }
  .score { padding: 0.5rem 0.8rem; border-radius: 6px; background: #141a66; }
  .score.active { outline: 2px solid #ffcc00; }
  .swatch { display: inline-block; width: 0.8rem; height: 0.8rem; border-radius: 50%; margin-right: 0.4rem; }
  .big { font-size: 1.3rem; margin: 1rem 0; max-width: 50rem; }
  .hidden { display: none; }
  .set { border: 1px solid #445; border-radius: 6px; padding: 0.6rem; margin: 0.4rem 0; max-width: 40rem; }
  .muted { color: #99a; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>JEOPARDY!</h1>
<div id="status">Connecting…</div>
<div id="app"></div>

<script>
(function() {
  const statusEl = document.getElementById('status');
  const app = document.getElementById('app');

  let isHost = false;
  let state = null;
  let paidOut = {};

  const proto = (location.protocol === 'https:') ? 'wss://' : 'ws://';
  const wsPath = location.pathname.replace(/\/$/, '') + '/ws';
  const ws = new WebSocket(proto + location.host + wsPath);

  // Library endpoints live beside /jeopardy, works behind a path prefix.
  const apiBase = location.pathname.replace(/\/jeopardy\/[^/]*\/?$/, '') + '/api/sets';

  function send(msg) {
    if (isHost) { ws.send(JSON.stringify(msg)); }
  }

  function esc(s) {
    const d = document.createElement('div');
    d.textContent = s == null ? '' : String(s);
    return d.innerHTML;
  }

  function swatch(color) {
    return '<span class="swatch" style="background:' + esc(color) + '"></span>';
  }

  function scoreboard(players, selector) {
    let html = '<div class="scores">';
    (players || []).forEach(function(p, i) {
      html += '<div class="score' + (i === selector ? ' active' : '') + '">' +
        swatch(p.color) + '<b>' + esc(p.name) + '</b> ' + p.score + '</div>';
    });
    return html + '</div>';
  }

  function renderMenu() {
    let html = '<h2>Main Menu</h2>';
    html += '<button id="play-default">Play ' + esc(state.title) + '</button> ';
    html += '<button id="create">Create Custom Questions</button>';
    html += '<h2>Saved Games</h2>';
    if (!state.sets || !state.sets.length) {
      html += '<p class="muted">No saved games yet. Create one, or upload a game file.</p>';
    }
    (state.sets || []).forEach(function(s) {
      html += '<div class="set"><b>' + esc(s.title) + '</b><div class="muted">' + esc(s.description) +
        '</div><div class="muted">' + s.slots + '/25 questions</div>' +
        '<button data-play="' + s.id + '"' + (s.complete ? '' : ' disabled') + '>Play</button>' +
        '<button data-edit="' + s.id + '">Edit</button>' +
        '<a href="' + apiBase + '/' + s.id + '" download><button>Download</button></a>' +
        '<button data-del="' + s.id + '">Delete</button></div>';
    });
    html += '<p><input type="file" id="upload" accept=".json"></p>';
    app.innerHTML = html;

    document.getElementById('play-default').onclick = function() { startGame(null); };
    document.getElementById('create').onclick = function() { send({type: 'start_editor'}); };
    app.querySelectorAll('[data-play]').forEach(function(b) {
      b.onclick = function() { startGame(parseInt(b.dataset.play, 10)); };
    });
    app.querySelectorAll('[data-edit]').forEach(function(b) {
      b.onclick = function() { send({type: 'start_editor', set_id: parseInt(b.dataset.edit, 10)}); };
    });
    app.querySelectorAll('[data-del]').forEach(function(b) {
      b.onclick = function() {
        if (!confirm('Delete this saved game?')) { return; }
        fetch(apiBase + '/' + b.dataset.del, {method: 'DELETE'}).then(function() {
          send({type: 'main_menu'});
        });
      };
    });
    document.getElementById('upload').onchange = function(e) {
      const file = e.target.files[0];
      if (!file) { return; }
      file.text().then(function(body) {
        return fetch(apiBase, {method: 'POST', body: body});
      }).then(function(resp) {
        if (!resp.ok) { return resp.text().then(function(t) { alert(t); }); }
        send({type: 'main_menu'});
      });
      e.target.value = '';
    };
  }

  function startGame(setID) {
    const count = parseInt(prompt('How many players? (1-6)', '4') || '0', 10);
    if (!count || count < 1) { return; }
    const names = [];
    for (let i = 1; i <= count; i++) {
      const name = prompt('Enter name for Player ' + i + ':') || '';
      if (!name.trim()) { return; }
      names.push(name.trim());
    }
    const msg = {type: 'create_session', players: names};
    if (setID !== null) { msg.set_id = setID; }
    paidOut = {};
    send(msg);
  }

  function renderEditor() {
    const e = state.editor;
    let html = '<h2>' + (e.editing ? 'Edit Custom Game' : 'Create Custom Questions') + '</h2>';

    html += '<details' + (e.step === 0 ? ' open' : '') + '><summary>Category Names</summary>';
    for (let i = 0; i < 5; i++) {
      html += '<input id="cat-' + i + '" value="' + esc(e.categories[i]) + '">';
    }
    html += '<br><button id="save-cats">Save Categories</button></details>';

    html += '<p class="muted">';
    e.progress.forEach(function(n, i) { html += esc(e.categories[i]) + ': ' + n + '/5 &nbsp; '; });
    html += '</p>';

    if (!e.done) {
      html += '<h2>Question ' + (e.step + 1) + ' of 25 — ' + esc(e.category) + ' for ' + e.value + '</h2>';
      html += '<p>Answer (shown to players first):</p><textarea id="answer" rows="3">' + esc(e.answer) + '</textarea>';
      html += '<p>Question (the correct response):</p><textarea id="question" rows="2">' + esc(e.question) + '</textarea>';
      html += '<p>';
      if (e.step > 0) { html += '<button id="prev">Previous</button>'; }
      html += '<button id="save-slot">Save &amp; Next</button></p>';
    } else {
      html += '<p class="big">All 25 questions created!</p>';
    }

    if (e.complete) {
      html += '<h2>Save Game</h2>';
      html += '<input id="title" placeholder="Game name">';
      html += '<input id="desc" placeholder="Description">';
      html += '<input id="final-cat" placeholder="Final round category">';
      html += '<textarea id="final-answer" rows="2" placeholder="Final round answer"></textarea>';
      html += '<textarea id="final-question" rows="2" placeholder="Final round question"></textarea>';
      html += '<p><button id="finish">Save Game</button></p>';
    }

    html += '<p><button id="menu">Back to Menu</button></p>';
    app.innerHTML = html;

    document.getElementById('save-cats').onclick = function() {
      const names = [];
      for (let i = 0; i < 5; i++) { names.push(document.getElementById('cat-' + i).value); }
      send({type: 'set_categories', names: names});
    };
    const prev = document.getElementById('prev');
    if (prev) {
      prev.onclick = function() {
        send({type: 'previous_slot',
          answer: document.getElementById('answer').value,
          question: document.getElementById('question').value});
      };
    }
    const save = document.getElementById('save-slot');
    if (save) {
      save.onclick = function() {
        send({type: 'save_slot',
          answer: document.getElementById('answer').value,
          question: document.getElementById('question').value});
      };
    }
    const finish = document.getElementById('finish');
    if (finish) {
      finish.onclick = function() {
        send({type: 'finish_editor',
          title: document.getElementById('title').value,
          description: document.getElementById('desc').value,
          final: {
            category: document.getElementById('final-cat').value,
            answer: document.getElementById('final-answer').value,
            question: document.getElementById('final-question').value
          }});
      };
    }
    document.getElementById('menu').onclick = function() { send({type: 'main_menu'}); };
  }

  function renderBoard() {
    let html = '<h2>' + esc(state.title) + '</h2>';
    html += '<p class="big" style="color:#ffcc00">' + esc(state.selector_name) + "'s turn to select</p>";
    html += '<div class="board">';
    state.columns.forEach(function(col) { html += '<div class="cat">' + esc(col.category) + '</div>'; });
    for (let row = 0; row < 5; row++) {
      state.columns.forEach(function(col, c) {
        const cell = col.cells[row];
        html += '<button class="cell' + (cell.used ? ' used' : '') + '" data-cat="' + (c + 1) +
          '" data-val="' + cell.value + '"' + (cell.used ? ' disabled' : '') + '>' +
          (cell.used ? '---' : cell.value) + '</button>';
      });
    }
    html += '</div>';
    html += scoreboard(state.players, state.selector);
    html += '<p class="muted">Questions remaining: ' + state.questions_remaining + '</p>';
    html += '<p><button id="reset">Reset Game</button><button id="menu">Main Menu</button></p>';
    app.innerHTML = html;

    app.querySelectorAll('.cell').forEach(function(b) {
      b.onclick = function() {
        send({type: 'select_question', category: parseInt(b.dataset.cat, 10), value: parseInt(b.dataset.val, 10)});
      };
    });
    document.getElementById('reset').onclick = function() {
      if (confirm('Reset the current game? All progress will be lost.')) { send({type: 'reset_game'}); }
    };
    document.getElementById('menu').onclick = function() {
      if (confirm('Return to the main menu? All game progress will be lost.')) { send({type: 'main_menu'}); }
    };
  }

  function renderQuestion() {
    let html = '<h2>' + esc(state.category) + ' for ' + state.value + '</h2>';
    html += '<p class="big">' + esc(state.answer_text) + '</p>';
    if (!state.prompt_shown) {
      html += '<p><button id="show">Show Question</button></p>';
    } else {
      html += '<p class="big" style="color:#ffcc00">' + esc(state.prompt_text) + '</p>';
      html += '<p>Who got it right?</p><p>';
      state.players.forEach(function(p, i) {
        html += '<button data-correct="' + i + '" style="background:' + esc(p.color) + ';color:#000">' + esc(p.name) + ' ✓</button>';
      });
      html += '</p><p><button id="nobody">Nobody Correct</button></p>';
    }
    html += scoreboard(state.players, -1);
    app.innerHTML = html;

    const show = document.getElementById('show');
    if (show) { show.onclick = function() { send({type: 'show_question'}); }; }
    app.querySelectorAll('[data-correct]').forEach(function(b) {
      b.onclick = function() { send({type: 'player_correct', player: parseInt(b.dataset.correct, 10)}); };
    });
    const nobody = document.getElementById('nobody');
    if (nobody) { nobody.onclick = function() { send({type: 'nobody_correct'}); }; }
  }

  function renderFinalWager() {
    let html = '<h2>Final Round: ' + esc(state.final_category) + '</h2>';
    html += '<p class="big">' + esc(state.wager_name) + "'s turn to wager</p>";
    html += '<p>Current score: ' + state.wager_score + ' — maximum wager: ' + state.wager_max + '</p>';
    html += '<p><input id="wager" type="number" min="0" max="' + state.wager_max + '"> <button id="submit">Submit Wager</button></p>';
    if (state.wagers && state.wagers.length) {
      html += '<h2>Wagers so far</h2>';
      state.wagers.forEach(function(w) {
        html += '<p>' + swatch(w.color) + esc(w.name) + ': ' + w.amount + '</p>';
      });
    }
    app.innerHTML = html;

    document.getElementById('submit').onclick = function() {
      send({type: 'submit_wager', amount: parseInt(document.getElementById('wager').value, 10) || 0});
    };
  }

  function renderFinalQuestion() {
    let html = '<h2>Final Round: ' + esc(state.final_category) + '</h2>';
    html += '<p class="big">' + esc(state.answer_text) + '</p>';
    (state.wagers || []).forEach(function(w) {
      html += '<p>' + swatch(w.color) + esc(w.name) + ' wagered ' + w.amount + '</p>';
    });
    if (!state.final_revealed) {
      html += '<p><button id="show">Show Question</button></p>';
    } else {
      html += '<p class="big" style="color:#ffcc00">' + esc(state.prompt_text) + '</p>';
      html += '<p>Who got it right?</p><p>';
      state.players.forEach(function(p, i) {
        html += '<button data-correct="' + i + '"' + (paidOut[i] ? ' disabled' : '') +
          ' style="background:' + esc(p.color) + ';color:#000">' + esc(p.name) + ' ✓</button>';
      });
      html += '</p><p><button id="finish">Finish Game</button></p>';
    }
    html += scoreboard(state.players, -1);
    app.innerHTML = html;

    const show = document.getElementById('show');
    if (show) { show.onclick = function() { send({type: 'show_final_question'}); }; }
    app.querySelectorAll('[data-correct]').forEach(function(b) {
      b.onclick = function() {
        paidOut[b.dataset.correct] = true;
        send({type: 'final_correct', player: parseInt(b.dataset.correct, 10)});
      };
    });
    const finish = document.getElementById('finish');
    if (finish) { finish.onclick = function() { send({type: 'finish_game'}); }; }
  }

  function renderGameOver() {
    const winner = state.rankings[0];
    let html = '<h2>🏆 Winner: ' + esc(winner.name) + '! 🏆</h2>';
    state.rankings.forEach(function(p, i) {
      html += '<p>' + (i + 1) + '. ' + swatch(p.color) + esc(p.name) + ' — ' + p.score + '</p>';
    });
    html += '<p><button id="again">Play Again</button><button id="menu">Main Menu</button></p>';
    app.innerHTML = html;

    document.getElementById('again').onclick = function() { paidOut = {}; send({type: 'reset_game'}); };
    document.getElementById('menu').onclick = function() { send({type: 'main_menu'}); };
  }

  function render() {
    if (!state) { return; }
    switch (state.screen) {
      case 'menu': renderMenu(); break;
      case 'editor': renderEditor(); break;
      case 'board': paidOut = {}; renderBoard(); break;
      case 'question': renderQuestion(); break;
      case 'final_wager': renderFinalWager(); break;
      case 'final_question': renderFinalQuestion(); break;
      case 'game_over': renderGameOver(); break;
    }
    if (!isHost) {
      app.querySelectorAll('button, input, textarea').forEach(function(el) { el.disabled = true; });
    }
  }

  ws.onopen = function() {
    statusEl.textContent = 'Connected.';
  };

  ws.onmessage = function(event) {
    try {
      const msg = JSON.parse(event.data);

      if (msg.type === 'session_info') {
        isHost = msg.is_host;
        statusEl.innerHTML = 'Game ' + esc(msg.game_id) + ' — ' +
          (isHost ? 'you are the host' : 'spectating') +
          ' — <a style="color:#ffcc00" href="' + location.pathname + '/qr">share QR</a>';
        return;
      }

      if (msg.type === 'state') {
        state = msg;
        render();
        return;
      }

      if (msg.type === 'error') {
        alert(msg.message);
        return;
      }

      if (msg.type === 'saved') {
        alert('Game "' + msg.title + '" saved successfully!');
        return;
      }
    } catch (e) {
      console.error('bad message', e);
    }
  };

  ws.onclose = function() {
    statusEl.textContent = 'Disconnected.';
  };

  ws.onerror = function() {
    statusEl.textContent = 'Error with WebSocket.';
  };
})();
</script>
</body>
</html>
`
