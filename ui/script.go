package ui

import (
	"fmt"

	"github.com/fleetra/site/config"
)

// SubmitPath is the form relay endpoint.
const SubmitPath = "/api/submit-form"

// formScript wires every form carrying a data-relay attribute to the relay
// endpoint. Checkbox groups marked data-multi are collected as arrays.
// ES5 only so it runs before any polyfill has loaded.
func formScript() string {
	return fmt.Sprintf(`(function(){
function collect(f){var d={},els=f.elements;for(var i=0;i<els.length;i++){var e=els[i];
if(!e.name||e.disabled||e.type==='submit')continue;
if((e.type==='checkbox'||e.type==='radio')&&!e.checked)continue;
if(e.hasAttribute('data-multi')){(d[e.name]=d[e.name]||[]).push(e.value)}else{d[e.name]=e.value}}
return d}
function show(f,ok,msg){var r=f.querySelector('[data-result]');if(!r)return;
r.className=ok?'mt-4 bg-green-100 text-green-700 px-4 py-3 rounded':'mt-4 bg-red-100 text-red-700 px-4 py-3 rounded';
r.textContent=msg}
document.addEventListener('submit',function(ev){var f=ev.target;
if(!f||!f.hasAttribute||!f.hasAttribute('data-relay'))return;
ev.preventDefault();
if(!window.fetch){show(f,false,'Your browser cannot send this form. Please email us instead.');return}
var b=f.querySelector('button[type=submit]');if(b)b.disabled=true;
fetch(%q,{method:'POST',headers:{'Content-Type':'application/json'},
body:JSON.stringify({type:f.getAttribute('data-relay'),formData:collect(f)})})
.then(function(r){return r.json().catch(function(){return {success:false,error:'Unexpected response ('+r.status+')'}})})
.then(function(j){if(j.success){show(f,true,j.message);f.reset();
var to=f.getAttribute('data-redirect');if(to){setTimeout(function(){window.location=to},%d)}}
else{show(f,false,j.error||'Something went wrong, please try again.')}})
['catch'](function(){show(f,false,'Network error, please try again.')})
.then(function(){if(b)b.disabled=false})})})();`, SubmitPath, config.RedirectDelay.Milliseconds())
}
