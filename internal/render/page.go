package render

// pageTemplate is the complete portfolio page. Styling relies on the Tailwind
// CDN plus Font Awesome icons; all data decisions (enabled controls, default
// cards, placeholder prompts) are resolved in pageContext before execution so
// the template only selects between precomputed values.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="description" content="{{.Name}} - Regis University Data Science Student Portfolio">
    <title>{{.Name}} - Regis University Data Science Portfolio</title>

    <link rel="icon" type="image/png" href="../assets/img/favicon.png">
    <script src="https://cdn.tailwindcss.com"></script>
    <link rel="stylesheet" href="../assets/css/style.css">
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">

    <script>
        tailwind.config = {
            theme: {
                extend: {
                    colors: {
                        primary: '#1e40af',
                        secondary: '#7c3aed',
                        accent: '#06b6d4',
                    }
                }
            }
        }
    </script>
</head>
<body class="bg-gray-50">
    <nav class="bg-white shadow-lg sticky top-0 z-50">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between items-center h-16">
                <div class="flex items-center">
                    <i class="fas fa-user-graduate text-primary text-2xl mr-3"></i>
                    <span class="font-bold text-xl text-gray-800">Regis University Portfolio</span>
                </div>
                <div class="hidden md:flex space-x-6">
                    <a href="../index.html" class="text-gray-700 hover:text-primary transition duration-300">
                        <i class="fas fa-home mr-1"></i> Home
                    </a>
                    <a href="#about" class="text-gray-700 hover:text-primary transition duration-300">About</a>
                    <a href="#projects" class="text-gray-700 hover:text-primary transition duration-300">Projects</a>
                    <a href="#contact" class="text-gray-700 hover:text-primary transition duration-300">Contact</a>
                </div>
                <div class="md:hidden">
                    <button id="mobile-menu-button" class="text-gray-700 hover:text-primary">
                        <i class="fas fa-bars text-2xl"></i>
                    </button>
                </div>
            </div>
        </div>
        <div id="mobile-menu" class="hidden md:hidden bg-white border-t">
            <div class="px-2 pt-2 pb-3 space-y-1">
                <a href="../index.html" class="block px-3 py-2 text-gray-700 hover:bg-gray-100 rounded">
                    <i class="fas fa-home mr-1"></i> Home
                </a>
                <a href="#about" class="block px-3 py-2 text-gray-700 hover:bg-gray-100 rounded">About</a>
                <a href="#projects" class="block px-3 py-2 text-gray-700 hover:bg-gray-100 rounded">Projects</a>
                <a href="#contact" class="block px-3 py-2 text-gray-700 hover:bg-gray-100 rounded">Contact</a>
            </div>
        </div>
    </nav>

    <section class="bg-gradient-to-r from-primary to-secondary py-16">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex flex-col md:flex-row items-center justify-center gap-8">
                <div class="flex-shrink-0">
                    <div class="w-48 h-48 rounded-full overflow-hidden border-4 border-white shadow-2xl bg-white">
                        <img src="{{.AvatarURL}}"
                             alt="{{.Name}}"
                             class="w-full h-full object-cover"
                             onerror="this.src='https://via.placeholder.com/200x200/1e40af/ffffff?text={{.Initial}}'">
                    </div>
                </div>

                <div class="text-center md:text-left text-white">
                    <h1 class="text-4xl md:text-5xl font-bold mb-2">{{.Name}}</h1>
                    <p class="text-xl text-blue-100 mb-2">{{.Tagline}}</p>
                    <p class="text-lg text-blue-200 mb-4">{{.Affiliation}}</p>

                    <div class="flex justify-center md:justify-start space-x-4 mb-4">
                        <a href="{{.Hero.GitHub.URL}}"{{if .Hero.GitHub.Enabled}} target="_blank"{{end}}
                           class="w-10 h-10 bg-white text-primary rounded-full flex items-center justify-center hover:bg-blue-50 transition duration-300">
                            <i class="fab fa-github text-xl"></i>
                        </a>
                        <a href="{{.Hero.LinkedIn.URL}}"{{if .Hero.LinkedIn.Enabled}} target="_blank"{{end}}
                           class="w-10 h-10 bg-white text-primary rounded-full flex items-center justify-center hover:bg-blue-50 transition duration-300">
                            <i class="fab fa-linkedin text-xl"></i>
                        </a>
                        {{if .Contact.HasEmail}}<a href="mailto:{{.Contact.Email}}"
                           class="w-10 h-10 bg-white text-primary rounded-full flex items-center justify-center hover:bg-blue-50 transition duration-300">
                            <i class="fas fa-envelope text-xl"></i>
                        </a>{{end}}
                        <a href="{{.CV.URL}}"{{if .CV.Enabled}} target="_blank"{{end}}
                           class="w-10 h-10 bg-white text-primary rounded-full flex items-center justify-center hover:bg-blue-50 transition duration-300{{if not .CV.Enabled}} opacity-50 cursor-not-allowed{{end}}">
                            <i class="fas fa-file-pdf text-xl"></i>
                        </a>
                    </div>

                    <div class="flex flex-wrap justify-center md:justify-start gap-3">
                        <a href="{{.CV.URL}}"{{if .CV.Enabled}} target="_blank"{{end}}
                           class="{{if .CV.Enabled}}bg-white text-primary{{else}}bg-gray-300 text-gray-600 cursor-not-allowed{{end}} px-4 py-2 rounded-lg font-semibold hover:bg-blue-50 transition duration-300 inline-flex items-center">
                            <i class="fas fa-download mr-2"></i> Download CV
                        </a>
                        <a href="#contact"
                           class="bg-transparent border-2 border-white text-white px-4 py-2 rounded-lg font-semibold hover:bg-white hover:text-primary transition duration-300 inline-flex items-center">
                            <i class="fas fa-paper-plane mr-2"></i> Contact Me
                        </a>
                    </div>
                </div>
            </div>
        </div>
    </section>

    <section id="about" class="py-16 bg-white">
        <div class="max-w-5xl mx-auto px-4 sm:px-6 lg:px-8">
            <h2 class="text-3xl font-bold text-gray-900 mb-4 text-center">About Me</h2>
            <div class="w-20 h-1 bg-primary mx-auto mb-8"></div>

            <div class="prose prose-lg max-w-none text-gray-700">
                {{.AboutHTML}}
            </div>

            <div class="mt-12">
                <h3 class="text-2xl font-bold text-gray-900 mb-6 text-center">Technical Skills</h3>
                <div class="grid grid-cols-2 md:grid-cols-4 gap-4">
                    {{range .Skills}}<div class="bg-gradient-to-br from-{{.Color}}-50 to-{{.Color}}-100 p-4 rounded-lg text-center border border-{{.Color}}-200">
                        <i class="{{.Icon}} text-{{.Color}}-600 text-3xl mb-2"></i>
                        <p class="font-semibold">{{.Name}}</p>
                        <p class="text-sm text-gray-600">{{.Items}}</p>
                    </div>
                    {{end}}
                </div>
            </div>
        </div>
    </section>

    <section id="projects" class="py-16 bg-gray-50">
        <div class="max-w-6xl mx-auto px-4 sm:px-6 lg:px-8">
            <h2 class="text-3xl font-bold text-gray-900 mb-4 text-center">Data Science Practicum Projects</h2>
            <div class="w-20 h-1 bg-primary mx-auto mb-12"></div>

            {{if .Projects}}{{range .Projects}}<div class="bg-white rounded-lg shadow-lg overflow-hidden mb-8 border border-gray-200 hover:shadow-xl transition duration-300">
                <div class="bg-gradient-to-r {{.Gradient}} to-blue-600 px-6 py-4">
                    <h3 class="text-2xl font-bold text-white flex items-center">
                        <i class="fas fa-project-diagram mr-3"></i>
                        {{.CourseLabel}}
                    </h3>
                </div>
                <div class="p-6">
                    <h4 class="text-xl font-bold text-gray-900 mb-3">{{.Title}}</h4>

                    <div class="mb-4">
                        {{range .Tags}}<span class="inline-block bg-{{.Color}}-100 text-{{.Color}}-800 text-xs font-semibold px-3 py-1 rounded-full mr-2">
                            <i class="fas fa-tag mr-1"></i> {{.Label}}
                        </span>{{end}}
                    </div>

                    <p class="text-gray-700 mb-4 leading-relaxed">
                        <strong>Abstract:</strong> {{.Abstract}}
                    </p>

                    {{if .Achievements}}<div class="border-t border-gray-200 pt-4 mt-4">
                        <h5 class="font-semibold text-gray-900 mb-3">Key Achievements:</h5>
                        <ul class="list-disc list-inside space-y-2 text-gray-700 mb-4">
                            {{range .Achievements}}<li>{{.}}</li>
                            {{end}}
                        </ul>
                    </div>{{end}}

                    <div class="flex flex-wrap gap-3 mt-6">
                        <a href="{{.GitHub.URL}}"{{if .GitHub.Enabled}} target="_blank"{{end}}
                           class="inline-flex items-center px-4 py-2 {{if .GitHub.Enabled}}bg-gray-900 text-white hover:bg-gray-800{{else}}bg-gray-300 text-gray-600 cursor-not-allowed{{end}} rounded-lg transition duration-300">
                            <i class="fab fa-github mr-2"></i> View Code
                        </a>
                        <a href="{{.Report.URL}}"{{if .Report.Enabled}} target="_blank"{{end}}
                           class="inline-flex items-center px-4 py-2 {{if .Report.Enabled}}bg-primary text-white hover:bg-blue-800{{else}}bg-gray-300 text-gray-600 cursor-not-allowed{{end}} rounded-lg transition duration-300">
                            <i class="fas fa-file-pdf mr-2"></i> Read Report
                        </a>
                        <a href="{{.Slides.URL}}"{{if .Slides.Enabled}} target="_blank"{{end}}
                           class="inline-flex items-center px-4 py-2 {{if .Slides.Enabled}}bg-secondary text-white hover:bg-purple-800{{else}}bg-gray-300 text-gray-600 cursor-not-allowed{{end}} rounded-lg transition duration-300">
                            <i class="fas fa-presentation mr-2"></i> View Slides
                        </a>
                        {{if .Demo.Enabled}}<a href="{{.Demo.URL}}" target="_blank"
                           class="inline-flex items-center px-4 py-2 bg-accent text-white hover:bg-cyan-700 rounded-lg transition duration-300">
                            <i class="fas fa-external-link-alt mr-2"></i> Live Demo
                        </a>{{end}}
                    </div>
                </div>
            </div>
            {{end}}{{else}}<div class="bg-white rounded-lg shadow-lg p-8 text-center">
                <div class="bg-gray-100 rounded-lg p-8">
                    <i class="fas fa-graduation-cap text-4xl text-gray-400 mb-4"></i>
                    <h3 class="text-2xl font-bold text-gray-600 mb-4">Data Science Practicum Projects</h3>
                    <p class="text-gray-500">Project information will be available soon.</p>
                    <small class="text-gray-400 block mt-2">Please update your profile.md with project details</small>
                </div>
            </div>{{end}}
        </div>
    </section>

    <section id="contact" class="py-16 bg-white">
        <div class="max-w-4xl mx-auto px-4 sm:px-6 lg:px-8">
            <h2 class="text-3xl font-bold text-gray-900 mb-4 text-center">Get In Touch</h2>
            <div class="w-20 h-1 bg-primary mx-auto mb-12"></div>
            <div class="grid md:grid-cols-2 gap-8">
                <div>
                    <h3 class="text-xl font-semibold mb-4">Contact Information</h3>
                    <div class="space-y-4">
                        <div class="flex items-start">
                            <div class="flex-shrink-0">
                                <div class="w-10 h-10 bg-primary rounded-lg flex items-center justify-center">
                                    <i class="fas fa-envelope text-white"></i>
                                </div>
                            </div>
                            <div class="ml-4">
                                <p class="font-semibold">Email</p>
                                {{if .Contact.HasEmail}}<a href="mailto:{{.Contact.Email}}" class="text-primary hover:underline">{{.Contact.Email}}</a>{{else}}<span class="text-gray-500">Add email in profile.md</span>{{end}}
                            </div>
                        </div>

                        <div class="flex items-start">
                            <div class="flex-shrink-0">
                                <div class="w-10 h-10 bg-secondary rounded-lg flex items-center justify-center">
                                    <i class="fab fa-linkedin text-white"></i>
                                </div>
                            </div>
                            <div class="ml-4">
                                <p class="font-semibold">LinkedIn</p>
                                <a href="{{.Contact.LinkedIn.URL}}"{{if .Contact.LinkedIn.Enabled}} target="_blank"{{end}}
                                   class="text-primary hover:underline">{{if .Contact.LinkedIn.Enabled}}{{.Contact.LinkedIn.Label}}{{else}}{{.Contact.LinkedIn.Prompt}}{{end}}</a>
                            </div>
                        </div>

                        <div class="flex items-start">
                            <div class="flex-shrink-0">
                                <div class="w-10 h-10 bg-gray-900 rounded-lg flex items-center justify-center">
                                    <i class="fab fa-github text-white"></i>
                                </div>
                            </div>
                            <div class="ml-4">
                                <p class="font-semibold">GitHub</p>
                                <a href="{{.Contact.GitHub.URL}}"{{if .Contact.GitHub.Enabled}} target="_blank"{{end}}
                                   class="text-primary hover:underline">{{if .Contact.GitHub.Enabled}}{{.Contact.GitHub.Label}}{{else}}{{.Contact.GitHub.Prompt}}{{end}}</a>
                            </div>
                        </div>

                        <div class="flex items-start">
                            <div class="flex-shrink-0">
                                <div class="w-10 h-10 bg-accent rounded-lg flex items-center justify-center">
                                    <i class="fas fa-globe text-white"></i>
                                </div>
                            </div>
                            <div class="ml-4">
                                <p class="font-semibold">Portfolio</p>
                                <a href="{{.Contact.Portfolio.URL}}"{{if .Contact.Portfolio.Enabled}} target="_blank"{{end}}
                                   class="text-primary hover:underline">{{if .Contact.Portfolio.Enabled}}{{.Contact.Portfolio.Label}}{{else}}{{.Contact.Portfolio.Prompt}}{{end}}</a>
                            </div>
                        </div>
                    </div>
                </div>

                <div class="bg-gradient-to-br from-blue-50 to-purple-50 p-6 rounded-lg border border-blue-200">
                    <h3 class="text-xl font-semibold mb-4">Send a Message</h3>
                    <p class="text-gray-700 mb-4">
                        Feel free to reach out for collaboration opportunities, questions about my projects,
                        or just to connect!
                    </p>
                    {{if .Contact.HasEmail}}<a href="mailto:{{.Contact.Email}}?subject=Hello%20from%20your%20portfolio"
                       class="block w-full bg-primary text-white text-center py-3 rounded-lg font-semibold hover:bg-blue-800 transition duration-300">
                        <i class="fas fa-paper-plane mr-2"></i> Send Email
                    </a>{{end}}

                    <div class="mt-6 pt-6 border-t border-blue-200">
                        <p class="text-sm text-gray-600 text-center mb-3">Connect on social media:</p>
                        <div class="flex justify-center space-x-4">
                            <a href="{{.Contact.GitHub.URL}}"{{if .Contact.GitHub.Enabled}} target="_blank"{{end}}
                               class="w-10 h-10 bg-gray-900 text-white rounded-full flex items-center justify-center hover:bg-gray-800 transition">
                                <i class="fab fa-github"></i>
                            </a>
                            <a href="{{.Contact.LinkedIn.URL}}"{{if .Contact.LinkedIn.Enabled}} target="_blank"{{end}}
                               class="w-10 h-10 bg-blue-700 text-white rounded-full flex items-center justify-center hover:bg-blue-800 transition">
                                <i class="fab fa-linkedin"></i>
                            </a>
                            {{if .Contact.HasEmail}}<a href="mailto:{{.Contact.Email}}"
                               class="w-10 h-10 bg-red-600 text-white rounded-full flex items-center justify-center hover:bg-red-700 transition">
                                <i class="fas fa-envelope"></i>
                            </a>{{end}}
                        </div>
                    </div>
                </div>
            </div>
        </div>
    </section>

    <footer class="bg-gray-900 text-white py-8">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center">
            <p class="mb-2">&copy; {{.Year}} {{.Name}}. All rights reserved.</p>
            <p class="text-gray-400 text-sm">Regis University Data Science Practicum Portfolio | Powered by GitHub Pages</p>
            <div class="mt-4">
                <a href="../index.html" class="text-gray-400 hover:text-white transition mx-2">
                    <i class="fas fa-home mr-1"></i> Back to Main Page
                </a>
            </div>
        </div>
    </footer>

    <script>
        document.getElementById('mobile-menu-button').addEventListener('click', function() {
            const menu = document.getElementById('mobile-menu');
            menu.classList.toggle('hidden');
        });

        document.querySelectorAll('a[href^="#"]').forEach(anchor => {
            anchor.addEventListener('click', function (e) {
                e.preventDefault();
                const target = document.querySelector(this.getAttribute('href'));
                if (target) {
                    target.scrollIntoView({ behavior: 'smooth', block: 'start' });
                    document.getElementById('mobile-menu').classList.add('hidden');
                }
            });
        });
    </script>
</body>
</html>
`
