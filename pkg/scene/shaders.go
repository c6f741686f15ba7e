package scene

// Shader sources are embedded so the binary needs no asset files.

const waterVertexShader = `#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

out vec3 FragPos;
out vec3 Normal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    FragPos = vec3(model * vec4(aPos, 1.0));
    Normal = mat3(model) * aNormal;
    gl_Position = projection * view * vec4(FragPos, 1.0);
}
`

const waterFragmentShader = `#version 460 core
in vec3 FragPos;
in vec3 Normal;

out vec4 FragColor;

uniform vec3 cameraPos;
uniform samplerCube skybox;

const vec3 deepColor = vec3(0.02, 0.12, 0.20);

void main() {
    vec3 N = normalize(Normal);
    vec3 I = normalize(FragPos - cameraPos);
    vec3 R = reflect(I, N);
    vec3 reflection = texture(skybox, R).rgb;

    // Schlick fresnel against the water/air boundary
    float cosTheta = clamp(dot(-I, N), 0.0, 1.0);
    float fresnel = 0.02 + 0.98 * pow(1.0 - cosTheta, 5.0);

    vec3 color = mix(deepColor, reflection, fresnel);
    FragColor = vec4(color, 1.0);
}
`

const skyboxVertexShader = `#version 460 core
layout (location = 0) in vec3 aPos;

out vec3 TexCoords;

uniform mat4 view;
uniform mat4 projection;

void main() {
    TexCoords = aPos;
    vec4 pos = projection * view * vec4(aPos, 1.0);
    // Force depth to the far plane so the skybox sits behind everything
    gl_Position = pos.xyww;
}
`

const skyboxFragmentShader = `#version 460 core
in vec3 TexCoords;

out vec4 FragColor;

uniform samplerCube skybox;

void main() {
    FragColor = texture(skybox, TexCoords);
}
`
